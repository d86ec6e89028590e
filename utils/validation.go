// utils/validation.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// Validator collects every violated field so a 400 names all of them at
// once instead of stopping at the first.
type Validator struct {
	problems []string
}

func (v *Validator) Add(field, problem string) {
	v.problems = append(v.problems, fmt.Sprintf("%s %s", field, problem))
}

// OneOf records a violation when value is not in the allowed set. Empty
// values are left to Require.
func (v *Validator) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if a == value {
			return
		}
	}
	v.Add(field, "must be one of: "+strings.Join(allowed, ", "))
}

func (v *Validator) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) Valid() bool {
	return len(v.problems) == 0
}

func (v *Validator) Message() string {
	return "Validation failed: " + strings.Join(v.problems, "; ")
}
