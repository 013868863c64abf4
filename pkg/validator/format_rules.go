package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"unicode"
)

// ValidEmail validates that a string is a bare email address: local-part@domain,
// a dotted domain and no whitespace or display-name decoration.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			localPart, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || localPart == "" || strings.Contains(domain, "@") {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates that a string is an absolute URL with a scheme and a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := parseAbsoluteURL(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURLWithScheme validates that a string is an absolute URL whose scheme is one of schemes.
// Scheme comparison is case-insensitive.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	return Rule{
		Check: func() bool {
			u, ok := parseAbsoluteURL(value)
			if !ok {
				return false
			}
			return slices.ContainsFunc(schemes, func(s string) bool {
				return strings.EqualFold(s, u.Scheme)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
			TranslationKey: "validation.url_scheme",
			TranslationValues: map[string]any{
				"field":   field,
				"schemes": schemes,
			},
		},
	}
}

func parseAbsoluteURL(value string) (*url.URL, bool) {
	if strings.TrimSpace(value) == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return nil, false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return nil, false
	}

	if u.Scheme == "" || u.Hostname() == "" {
		return nil, false
	}

	return u, true
}
