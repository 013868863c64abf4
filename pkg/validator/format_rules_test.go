package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"firstname.lastname@company.com",
			"email@123.123.123.123",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
			"email@example.name",
		}

		for _, email := range validEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.NoError(t, err, "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"spaces @domain.com",
			"email @domain .com",
			" padded@example.com",
			"email..double.dot@domain.com",
			"email@domain..com",
			"a@b@example.com",
			"Bob <bob@example.com>",
			"tab\t@example.com",
		}

		for _, email := range invalidEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.Error(t, err, "Email should be invalid: %q", email)
		}
	})

	t.Run("error metadata", func(t *testing.T) {
		err := validator.Apply(validator.ValidEmail("email", "nope"))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "must be a valid email address", errs[0].Message)
		assert.Equal(t, "validation.email", errs[0].TranslationKey)
	})
}

func TestValidURL(t *testing.T) {
	t.Run("valid URLs", func(t *testing.T) {
		for _, u := range []string{
			"https://example.com",
			"http://example.com/path?q=1#frag",
			"https://sub.example.co.uk:8443/",
			"ftp://files.example.com/pub",
			"http://localhost:8080",
		} {
			assert.True(t, validator.ValidURL("website", u).Check(), "URL should be valid: %s", u)
		}
	})

	t.Run("invalid URLs", func(t *testing.T) {
		for _, u := range []string{
			"",
			"not a url",
			"example.com",
			"/relative/path",
			"http://",
			"mailto:user@example.com",
			"http://exa mple.com",
			"https://example.com/ with space",
		} {
			assert.False(t, validator.ValidURL("website", u).Check(), "URL should be invalid: %q", u)
		}
	})
}

func TestValidURLWithScheme(t *testing.T) {
	schemes := []string{"http", "https", "ftp"}

	assert.True(t, validator.ValidURLWithScheme("website", "https://example.com", schemes).Check())
	assert.True(t, validator.ValidURLWithScheme("website", "HTTP://EXAMPLE.COM", schemes).Check())
	assert.True(t, validator.ValidURLWithScheme("website", "ftp://example.com/file.txt", schemes).Check())
	assert.False(t, validator.ValidURLWithScheme("website", "ws://example.com", schemes).Check())
	assert.False(t, validator.ValidURLWithScheme("website", "javascript:alert(1)", schemes).Check())
	assert.False(t, validator.ValidURLWithScheme("website", "not a url", schemes).Check())

	rule := validator.ValidURLWithScheme("website", "", schemes)
	assert.Equal(t, "must be a valid URL with scheme: http, https, ftp", rule.Error.Message)
	assert.Equal(t, "validation.url_scheme", rule.Error.TranslationKey)
}
