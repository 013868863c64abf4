// Package validator provides a composable set of type-safe validation rules
// and a small engine for evaluating them as an ordered, per-field rule table.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Rules are evaluated either directly with Apply, which runs every
// rule and aggregates failures, or through Validate, which walks a table of
// Field rows in declaration order.
//
// # Rule tables
//
// Each Field row names a field, an optional presence rule and a list of
// format rules:
//
//   - a failing Required rule emits exactly one error and skips the rest of
//     the row, so an empty value is never also reported as malformed;
//   - every rule in Rules runs otherwise, each failure adding its own error;
//   - When guards the whole row. DependsOn expresses cross-field rules that
//     only make sense once another field is known to be valid, NotBlank makes
//     optional fields skip their format rules when left empty.
//
// Usage:
//
//	errs := validator.Validate(
//	    validator.Field{
//	        Name:     "email",
//	        Required: validator.Require(validator.RequiredString("email", email)),
//	        Rules:    []validator.Rule{validator.ValidEmail("email", email)},
//	    },
//	    validator.Field{
//	        Name:  "confirm",
//	        Rules: []validator.Rule{validator.EqualTo("confirm", confirm, "password", password)},
//	        When:  validator.DependsOn("password"),
//	    },
//	)
//
// # Error Handling
//
// ValidationErrors is an ordered slice implementing error. Use
// ExtractValidationErrors or IsValidationError to tell validation failures
// from other errors; ErrInvalidArgument marks programmer errors such as a nil
// input. Helper methods Has, Get, GetErrors and Fields inspect the result.
//
// The package holds no mutable state; rules and tables may be evaluated from
// any number of goroutines.
package validator
