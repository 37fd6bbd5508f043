package formdata

import (
	"net/http"

	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
)

const (
	incompleteFormData = "INCOMPLETE_FORM_DATA" // errInfo
)

var (
	ErrIncompleteFormData = sharedError.NewDomainError(incompleteFormData)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incompleteFormData, sharedError.ErrorResponse{
		Status:  http.StatusUnprocessableEntity,
		Code:    "FORMDATA-001",
		Message: "Los datos del formulario están incompletos.",
	})
}
