package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestObjectIDRule(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"valid lowercase hex", "507f1f77bcf86cd799439011", true},
		{"valid uppercase hex", "507F1F77BCF86CD799439011", true},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non-hex characters", "507f1f77bcf86cd79943901z", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "objectid")
			assert.Equal(t, tt.valid, err == nil, "value: %q", tt.value)
		})
	}

	t.Run("omitempty skips empty values", func(t *testing.T) {
		assert.NoError(t, v.Var("", "omitempty,objectid"))
	})
}

func TestRoleRule(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		role  string
		valid bool
	}{
		{"admin", true},
		{"employee", true},
		{"Admin", false},
		{"owner", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			err := v.Var(tt.role, "role")
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestRegisterCustomValidators(t *testing.T) {
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			RegisterCustomValidators()
		})
	})
}
