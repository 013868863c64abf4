package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PasswordComposition describes a composed character-class rule: a bounded
// length plus required memberships in several classes, optionally restricted
// to the union of those classes.
type PasswordComposition struct {
	MinLength     int
	MaxLength     int
	RequireLetter bool   // at least one of A-Z or a-z
	RequireDigit  bool   // at least one of 0-9
	SpecialChars  string // at least one of these when non-empty
	Restrict      bool   // reject any character outside letters, digits and SpecialChars
}

// DefaultPasswordComposition returns the 8-20 character policy requiring a
// letter, a digit and one of @$!%*#?&, with nothing else allowed.
func DefaultPasswordComposition() PasswordComposition {
	return PasswordComposition{
		MinLength:     8,
		MaxLength:     20,
		RequireLetter: true,
		RequireDigit:  true,
		SpecialChars:  "@$!%*#?&",
		Restrict:      true,
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Matches reports whether value satisfies every condition of the composition.
func (c PasswordComposition) Matches(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < c.MinLength || (c.MaxLength > 0 && n > c.MaxLength) {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case isASCIILetter(r):
			hasLetter = true
		case isASCIIDigit(r):
			hasDigit = true
		case c.SpecialChars != "" && strings.ContainsRune(c.SpecialChars, r):
			hasSpecial = true
		default:
			if c.Restrict {
				return false
			}
		}
	}

	if c.RequireLetter && !hasLetter {
		return false
	}
	if c.RequireDigit && !hasDigit {
		return false
	}
	if c.SpecialChars != "" && !hasSpecial {
		return false
	}
	return true
}

// ComposedPassword validates value against the composition as a single rule,
// producing one error however many conditions fail.
func ComposedPassword(field, value string, c PasswordComposition) Rule {
	return Rule{
		Check: func() bool {
			return c.Matches(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be %d-%d characters with required character types", c.MinLength, c.MaxLength),
			TranslationKey: "validation.password_composition",
			TranslationValues: map[string]any{
				"field":          field,
				"min_length":     c.MinLength,
				"max_length":     c.MaxLength,
				"require_letter": c.RequireLetter,
				"require_digit":  c.RequireDigit,
				"special_chars":  c.SpecialChars,
			},
		},
	}
}
