package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// emailRegex is intentionally loose: it accepts multi-dot domains such as a@b..c
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+$`)
)

// IsValidEmail reports whether email has the local-part@domain.tld shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateEmail is the "contact_email" tag function
func ValidateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
