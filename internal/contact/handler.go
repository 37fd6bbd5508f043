package contact

import (
	"net/http"

	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	form *Form
}

func NewContactHandler(form *Form) *ContactHandler {
	return &ContactHandler{
		form: form,
	}
}

// ShowForm activates the form and describes its fields
func (h *ContactHandler) ShowForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormResponse{
		ViewState: Activate(ViewState{}),
		Fields:    h.form.Fields(),
	})
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var request SubmitRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := h.form.Submit(c.Request.Context(), request.submission(), request.viewState())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	if len(result.Errors) > 0 {
		base, _ := sharedError.ResolveDomainError(ErrInvalidContactForm)
		c.Error(ErrInvalidContactForm)
		c.JSON(base.Status, SubmitErrorResponse{
			FieldErrorsResponse: sharedError.NewFieldErrorsResponse(base, result.Errors),
			ViewState:           result.State,
		})
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		ViewState: result.State,
		Refresh:   result.Refresh,
		Contact: ContactResponse{
			Name:       result.Record.Name,
			Email:      logger.MaskEmail(result.Record.Email),
			Phone:      logger.MaskPhone(result.Record.Phone),
			NationalID: logger.MaskNationalID(result.Record.NationalID),
		},
	})
}
