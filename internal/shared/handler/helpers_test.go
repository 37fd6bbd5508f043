package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testConflict = "TEST_CONFLICT"

var errTestConflict = sharedError.NewDomainError(testConflict)

func init() {
	sharedError.RegisterDomainErrorResponse(testConflict, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TEST-001",
		Message: "conflict",
	})
}

type bindTarget struct {
	Phone string `json:"phone" binding:"required,ec_phone"`
}

func setupHelperRouter(fail error) *gin.Engine {
	router := testutil.SetupTestRouter()
	router.POST("/bind", func(c *gin.Context) {
		var target bindTarget
		if !handler.BindJSON(c, &target) {
			return
		}
		c.Status(http.StatusNoContent)
	})
	router.GET("/fail", func(c *gin.Context) {
		handler.RespondDomainError(c, fail)
	})
	return router
}

func TestBindJSON(t *testing.T) {
	router := setupHelperRouter(nil)

	tests := []struct {
		name     string
		request  testutil.TestRequest
		wantCode int
		wantErr  string
	}{
		{"valid", testutil.TestRequest{Method: http.MethodPost, URL: "/bind", Body: map[string]string{"phone": "0991234567"}}, http.StatusNoContent, ""},
		{"tag violation", testutil.TestRequest{Method: http.MethodPost, URL: "/bind", Body: map[string]string{"phone": "123"}}, http.StatusBadRequest, sharedError.ValidationFailed.Code},
		{"malformed", testutil.TestRequest{Method: http.MethodPost, URL: "/bind", RawBody: `{"phone":`}, http.StatusBadRequest, sharedError.InvalidRequest.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, tt.request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			if tt.wantErr != "" {
				var response sharedError.ErrorResponse
				testutil.ParseResponse(t, recorder, &response)
				assert.Equal(t, tt.wantErr, response.Code)
			}
		})
	}
}

func TestRespondDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"registered and wrapped", fmt.Errorf("save: %w", errTestConflict), "TEST-001"},
		{"unregistered", errors.New("boom"), sharedError.InternalServerError.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupHelperRouter(tt.err)

			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/fail"})

			var response sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}
