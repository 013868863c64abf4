package validator

import "strings"

// Passed records which fields of a table have passed all of their rules so far.
type Passed map[string]bool

// All reports whether every named field has passed.
func (p Passed) All(names ...string) bool {
	for _, name := range names {
		if !p[name] {
			return false
		}
	}
	return true
}

// Guard decides whether a field row is evaluated at all.
// It sees only the rows declared before it.
type Guard func(passed Passed) bool

// DependsOn evaluates the row only when all named fields passed.
func DependsOn(names ...string) Guard {
	return func(passed Passed) bool {
		return passed.All(names...)
	}
}

// NotBlank evaluates the row only when value has non-whitespace content.
// Use it for optional fields whose format rules apply once a value is present.
func NotBlank(value string) Guard {
	return func(Passed) bool {
		return strings.TrimSpace(value) != ""
	}
}

// AllOf combines guards; the row runs only when every guard allows it.
func AllOf(guards ...Guard) Guard {
	return func(passed Passed) bool {
		for _, g := range guards {
			if g != nil && !g(passed) {
				return false
			}
		}
		return true
	}
}

// Field is one row of an ordered rule table.
//
// Required, when set, short-circuits the row: a failing presence check emits
// exactly one error and the remaining rules are not evaluated. Every rule in
// Rules is evaluated otherwise, each failure producing its own error.
type Field struct {
	Name     string
	Required *Rule
	Rules    []Rule
	When     Guard
}

// Validate evaluates the rows in declaration order and returns the collected
// errors, or nil when every row passed or was skipped.
func Validate(fields ...Field) ValidationErrors {
	var errs ValidationErrors
	passed := make(Passed, len(fields))

	for _, f := range fields {
		if f.When != nil && !f.When(passed) {
			continue
		}

		if f.Required != nil && !f.Required.Check() {
			errs.Add(f.Required.Error)
			continue
		}

		ok := true
		for _, rule := range f.Rules {
			if !rule.Check() {
				errs.Add(rule.Error)
				ok = false
			}
		}
		if ok {
			passed[f.Name] = true
		}
	}

	return errs
}

// ApplyFields is Validate with the error-returning contract of Apply.
func ApplyFields(fields ...Field) error {
	if errs := Validate(fields...); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// Require takes the address of a presence rule for use in Field.Required.
func Require(rule Rule) *Rule {
	return &rule
}
