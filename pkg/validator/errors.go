package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidArgument signals a programmer error, such as a nil record,
	// as opposed to an end-user validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
)
