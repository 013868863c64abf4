package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

func TestRequiredComparable(t *testing.T) {
	type status string

	assert.True(t, validator.RequiredComparable("id", int64(1)).Check())
	assert.False(t, validator.RequiredComparable("id", int64(0)).Check())
	assert.True(t, validator.RequiredComparable("status", status("active")).Check())
	assert.False(t, validator.RequiredComparable("status", status("")).Check())
}

func TestEqualTo(t *testing.T) {
	t.Run("passes for identical strings", func(t *testing.T) {
		rule := validator.EqualTo("confirmPassword", "Secret1!", "password", "Secret1!")
		assert.True(t, rule.Check())
		assert.Equal(t, "confirmPassword", rule.Error.Field)
		assert.Equal(t, "must match password", rule.Error.Message)
		assert.Equal(t, "validation.equal_to", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "confirmPassword", "other": "password"}, rule.Error.TranslationValues)
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		assert.False(t, validator.EqualTo("confirm", "secret1!", "password", "Secret1!").Check())
	})

	t.Run("does not trim", func(t *testing.T) {
		assert.False(t, validator.EqualTo("confirm", "Secret1! ", "password", "Secret1!").Check())
	})

	t.Run("empty never matches non-empty", func(t *testing.T) {
		assert.False(t, validator.EqualTo("confirm", "", "password", "Secret1!").Check())
	})
}
