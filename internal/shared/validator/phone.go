package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches Ecuadorian numbers
	// Formats: 09XXXXXXXX (mobile) or 0[2-7]XXXXXXXX (fixed line)
	phoneRegex = regexp.MustCompile(`^(?:09[0-9]{8}|0[2-7][0-9]{8})$`)
)

// IsValidPhone validates an Ecuadorian mobile or fixed-line phone number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidatePhone validates an Ecuadorian phone number
// This is a common validator used across multiple domains
func ValidatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}
