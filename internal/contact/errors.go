package contact

import (
	"net/http"

	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
)

const (
	invalidContactForm = "INVALID_CONTACT_FORM" // errInfo
)

var (
	ErrInvalidContactForm = sharedError.NewDomainError(invalidContactForm)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidContactForm, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CONTACT-001",
		Message: "Revise los campos marcados del formulario.",
	})
}
