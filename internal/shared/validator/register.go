package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Tags registered by this package
const (
	EmailTag      = "contact_email"
	PhoneTag      = "ec_phone"
	NationalIDTag = "ec_cedula"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("could not get validator engine")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
// Domain-specific validators should be registered separately by each domain
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	if err := register(v); err != nil {
		return err
	}

	slog.Info("Common validators registered", "validators", []string{EmailTag, PhoneTag, NationalIDTag})
	return nil
}

// New returns a standalone validator with the common validators registered.
// Handy outside of gin binding, e.g. in unit tests.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := register(v); err != nil {
		return nil, err
	}
	return v, nil
}

func register(v *validator.Validate) error {
	validations := map[string]validator.Func{
		EmailTag:      ValidateEmail,
		PhoneTag:      ValidatePhone,
		NationalIDTag: ValidateNationalID,
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
