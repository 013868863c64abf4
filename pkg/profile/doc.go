// Package profile validates candidate user profile records.
//
// The rules live in an explicit, ordered table (see Rules) evaluated by
// package validator: id, name, email, password, confirmPassword, salary,
// phoneNumber, website. Required fields report a single "required" error when
// blank and skip their format checks; present values run every format check.
// The confirmPassword comparison only runs once the password itself passed.
//
//	err := profile.Validate(&rec)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, e := range errs {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// Validation is pure: the record is never modified and concurrent calls are safe.
// Messages can be localized with NewTranslator and i18n.Translator.Localize.
package profile
