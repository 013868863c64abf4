package profile

import (
	"fmt"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

// Field names as reported in validation errors.
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldSalary          = "salary"
	FieldPhoneNumber     = "phoneNumber"
	FieldWebsite         = "website"
)

// UserRecord is an untrusted candidate user profile submitted for validation.
// A zero ID counts as absent.
type UserRecord struct {
	ID              int64   `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Email           string  `json:"email" yaml:"email"`
	Password        string  `json:"password" yaml:"password"`
	ConfirmPassword string  `json:"confirmPassword" yaml:"confirmPassword"`
	Salary          float64 `json:"salary" yaml:"salary"`
	PhoneNumber     string  `json:"phoneNumber" yaml:"phoneNumber"`
	Website         string  `json:"website,omitempty" yaml:"website,omitempty"`
}

// Validate checks rec against the user profile rule table.
// It returns nil for a valid record, validator.ValidationErrors listing every
// violation in table order otherwise, and an error wrapping
// validator.ErrInvalidArgument when rec is nil.
func Validate(rec *UserRecord) error {
	if rec == nil {
		return fmt.Errorf("profile: nil user record: %w", validator.ErrInvalidArgument)
	}
	return validator.ApplyFields(Rules(*rec)...)
}

// Violations returns the ordered violations of rec; an empty result means valid.
func Violations(rec UserRecord) validator.ValidationErrors {
	return validator.Validate(Rules(rec)...)
}

// Validate is shorthand for profile.Validate(r).
func (r *UserRecord) Validate() error {
	return Validate(r)
}
