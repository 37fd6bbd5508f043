package handler

import (
	"net/http"

	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON decodes the JSON body into obj. On failure it has already written
// ERROR-001 for tag violations or ERROR-002 for malformed JSON and returns false.
//
// Usage:
//
//	var req SubmitRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError records err on the gin context for the access log and writes errResp
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	c.Error(err)
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError writes the response registered for err, falling back to
// InternalServerError when err wraps no registered DomainError.
//
// Usage:
//
//	if _, err := form.Submit(ctx, s, state); err != nil {
//	    handler.RespondDomainError(c, err)
//	    return
//	}
func RespondDomainError(c *gin.Context, err error) {
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = sharedError.InternalServerError
	}
	RespondError(c, err, resp)
}
