package validator

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EqualTo validates that value equals the value of otherField exactly.
// Strings are compared byte for byte, so the check is case-sensitive.
func EqualTo[T comparable](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + otherField,
			TranslationKey: "validation.equal_to",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}
