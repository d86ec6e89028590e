// utils/patch.go
package utils

import (
	"encoding/json"
	"errors"
)

// PatchFields decodes a PATCH body into its top-level keys so handlers can
// tell an absent field from an explicit null: a key that is present with a
// null value clears a nullable column, a missing key leaves it untouched.
func PatchFields(raw []byte) (map[string]json.RawMessage, error) {
	if len(raw) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return fields, nil
}
