package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Only the first error is reported
	fieldErr := validationErrors[0]
	message := FieldMessage(fieldErr.Field(), fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// FieldMessage returns the user-facing message for a failed rule on the field labelled label
func FieldMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo '%s' es obligatorio.", label)
	case "max":
		return fmt.Sprintf("El campo '%s' admite como máximo %s caracteres.", label, fe.Param())
	case "min":
		return fmt.Sprintf("El campo '%s' requiere al menos %s caracteres.", label, fe.Param())
	default:
		return fmt.Sprintf("El campo '%s' no es válido.", label)
	}
}
