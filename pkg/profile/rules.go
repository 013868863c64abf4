package profile

import (
	"regexp"

	"github.com/dmitrymomot/userprofile/pkg/validator"
)

// Messages reported for each rule. The wording is kept stable so callers can
// match on it; note that the salary message names 0 while the enforced lower
// bound is 1.
const (
	MsgIDRequired          = "The Id field is required."
	MsgNameRequired        = "Name is required."
	MsgNameLength          = "Name must be between 5 and 50 characters."
	MsgEmailRequired       = "Email is required."
	MsgEmailInvalid        = "Invalid email address."
	MsgPasswordRequired    = "Password is required."
	MsgPasswordMinLength   = "Password must be at least 8 characters."
	MsgPasswordComposition = "Password must be between 8 and 20 characters and contain at least one letter, one number, and one special character."
	MsgPasswordMismatch    = "Passwords do not match."
	MsgSalaryRange         = "Salary must be between 0 and 100000."
	MsgPhoneRequired       = "Phone number is required."
	MsgPhoneInvalid        = "Invalid phone number."
	MsgWebsiteInvalid      = "Invalid URL."
)

const (
	NameMinLength     = 5
	NameMaxLength     = 50
	PasswordMinLength = 8
	SalaryMin         = 1.0
	SalaryMax         = 100000.0
)

// WebsiteSchemes lists the URL schemes accepted for the website field.
var WebsiteSchemes = []string{"http", "https", "ftp"}

// phonePattern accepts an optional +, a 1-3 digit country code, an optional
// parenthesized area code and two groups of up to four digits, with space, dot
// or dash separators.
var phonePattern = regexp.MustCompile(`^\+?\d{1,3}[- .]?\(?\d{1,3}\)?[- .]?\d{1,4}[- .]?\d{1,4}$`)

var passwordComposition = validator.DefaultPasswordComposition()

// Rules builds the ordered rule table for rec.
func Rules(rec UserRecord) []validator.Field {
	return []validator.Field{
		{
			Name: FieldID,
			Required: validator.Require(validator.RequiredComparable(FieldID, rec.ID).
				WithMessage(MsgIDRequired).
				WithTranslationKey("profile.id.required")),
		},
		{
			Name: FieldName,
			Required: validator.Require(validator.RequiredString(FieldName, rec.Name).
				WithMessage(MsgNameRequired).
				WithTranslationKey("profile.name.required")),
			Rules: []validator.Rule{
				validator.LenBetween(FieldName, rec.Name, NameMinLength, NameMaxLength).
					WithMessage(MsgNameLength).
					WithTranslationKey("profile.name.length"),
			},
		},
		{
			Name: FieldEmail,
			Required: validator.Require(validator.RequiredString(FieldEmail, rec.Email).
				WithMessage(MsgEmailRequired).
				WithTranslationKey("profile.email.required")),
			Rules: []validator.Rule{
				validator.ValidEmail(FieldEmail, rec.Email).
					WithMessage(MsgEmailInvalid).
					WithTranslationKey("profile.email.invalid"),
			},
		},
		{
			Name: FieldPassword,
			Required: validator.Require(validator.RequiredString(FieldPassword, rec.Password).
				WithMessage(MsgPasswordRequired).
				WithTranslationKey("profile.password.required")),
			Rules: []validator.Rule{
				validator.MinLenString(FieldPassword, rec.Password, PasswordMinLength).
					WithMessage(MsgPasswordMinLength).
					WithTranslationKey("profile.password.min_length"),
				validator.ComposedPassword(FieldPassword, rec.Password, passwordComposition).
					WithMessage(MsgPasswordComposition).
					WithTranslationKey("profile.password.composition"),
			},
		},
		{
			Name: FieldConfirmPassword,
			Rules: []validator.Rule{
				validator.EqualTo(FieldConfirmPassword, rec.ConfirmPassword, FieldPassword, rec.Password).
					WithMessage(MsgPasswordMismatch).
					WithTranslationKey("profile.confirm_password.mismatch"),
			},
			When: validator.DependsOn(FieldPassword),
		},
		{
			Name: FieldSalary,
			Rules: []validator.Rule{
				validator.RangeNum(FieldSalary, rec.Salary, SalaryMin, SalaryMax).
					WithMessage(MsgSalaryRange).
					WithTranslationKey("profile.salary.range"),
			},
		},
		{
			Name: FieldPhoneNumber,
			Required: validator.Require(validator.RequiredString(FieldPhoneNumber, rec.PhoneNumber).
				WithMessage(MsgPhoneRequired).
				WithTranslationKey("profile.phone_number.required")),
			Rules: []validator.Rule{
				validator.MatchesPattern(FieldPhoneNumber, rec.PhoneNumber, phonePattern, "phone number").
					WithMessage(MsgPhoneInvalid).
					WithTranslationKey("profile.phone_number.invalid"),
			},
		},
		{
			Name: FieldWebsite,
			Rules: []validator.Rule{
				validator.ValidURLWithScheme(FieldWebsite, rec.Website, WebsiteSchemes).
					WithMessage(MsgWebsiteInvalid).
					WithTranslationKey("profile.website.invalid"),
			},
			When: validator.NotBlank(rec.Website),
		},
	}
}
