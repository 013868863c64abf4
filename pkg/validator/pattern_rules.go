package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesPattern validates value against a precompiled pattern.
// Blank values fail; pair it with a required rule when emptiness deserves its own message.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// MatchesRegex validates against custom patterns. Compiles regex on each call - cache externally for performance.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern), description)
}
