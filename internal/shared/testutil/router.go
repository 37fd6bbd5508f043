package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// SetupTestRouter returns a bare gin engine in test mode with the contact
// validation tags registered on the binding engine
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	_ = validator.RegisterAll()

	return gin.New()
}

// TestRequest describes one request sent through ExecuteRequest.
// Body is marshalled to JSON; RawBody is sent as-is and wins when set.
type TestRequest struct {
	Method  string
	URL     string
	Body    any
	RawBody string
}

// ExecuteRequest serves req on router and returns the recorded response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	switch {
	case req.RawBody != "":
		bodyReader = strings.NewReader(req.RawBody)
	case req.Body != nil:
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse decodes the JSON response body into v
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("parse response body %q: %v", recorder.Body.String(), err)
	}
}
