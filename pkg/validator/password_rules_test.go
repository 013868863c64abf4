package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

func TestDefaultPasswordComposition(t *testing.T) {
	c := validator.DefaultPasswordComposition()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid mixed", "abcDEF12!", true},
		{"valid minimum length", "Secret1!", true},
		{"valid maximum length", "Abcdefghijklmnop12@#", true},
		{"every special char", "a1@$!%*#?&", true},
		{"no special char", "abc12345", false},
		{"no digit", "abcdefg!", false},
		{"no letter", "12345678!", false},
		{"too short", "Ab1!", false},
		{"too long", "Abcdefghijklmnop12@#x", false},
		{"disallowed special char", "abc123!^", false},
		{"disallowed space", "abc 123!", false},
		{"disallowed non-ascii letter", "äbc1234!", false},
		{"dash is not in the set", "abc-1234", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Matches(tt.password))
		})
	}
}

func TestPasswordComposition_Unrestricted(t *testing.T) {
	c := validator.PasswordComposition{
		MinLength:     6,
		RequireLetter: true,
		RequireDigit:  true,
	}

	assert.True(t, c.Matches("ab cd 12"), "spaces allowed when unrestricted")
	assert.True(t, c.Matches("a1~~~~"))
	assert.False(t, c.Matches("abcdef"))
}

func TestComposedPassword(t *testing.T) {
	c := validator.DefaultPasswordComposition()

	rule := validator.ComposedPassword("password", "abc12345", c)
	assert.False(t, rule.Check())
	assert.Equal(t, "password", rule.Error.Field)
	assert.Equal(t, "password must be 8-20 characters with required character types", rule.Error.Message)
	assert.Equal(t, "validation.password_composition", rule.Error.TranslationKey)
	assert.Equal(t, "@$!%*#?&", rule.Error.TranslationValues["special_chars"])

	err := validator.Apply(validator.ComposedPassword("password", "x", c))
	errs := validator.ExtractValidationErrors(err)
	assert.Len(t, errs, 1, "composition failures collapse into one error")

	assert.True(t, validator.ComposedPassword("password", "abcDEF12!", c).Check())
}
