package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchFieldsPresenceAndNull(t *testing.T) {
	fields, err := PatchFields([]byte(`{"phone": null, "name": "Alice"}`))
	require.NoError(t, err)

	_, phonePresent := fields["phone"]
	_, namePresent := fields["name"]
	_, emailPresent := fields["email"]
	assert.True(t, phonePresent, "explicit null is still present")
	assert.True(t, namePresent)
	assert.False(t, emailPresent)
}

func TestPatchFieldsEmptyBody(t *testing.T) {
	fields, err := PatchFields(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestPatchFieldsRejectsNonObject(t *testing.T) {
	_, err := PatchFields([]byte(`[1,2,3]`))
	assert.Error(t, err)
}

func TestValidatorAggregatesEveryViolation(t *testing.T) {
	var v Validator
	v.Require("name", "")
	v.OneOf("status", "Bogus", []string{"Draft", "Sent"})
	v.OneOf("type", "Draft", []string{"Draft", "Sent"})

	assert.False(t, v.Valid())
	msg := v.Message()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "status must be one of")
	assert.NotContains(t, msg, "type must")
}
