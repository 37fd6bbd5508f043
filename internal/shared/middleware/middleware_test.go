package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sharedContext "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID())

	var fromGin, fromCtx string
	router.GET("/ping", func(c *gin.Context) {
		fromGin = middleware.GetRequestID(c)
		fromCtx = sharedContext.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, fromGin)
	assert.Equal(t, fromGin, fromCtx)
	assert.Equal(t, fromGin, recorder.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_KeepsCallerHeader(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-id")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "caller-id", recorder.Header().Get(middleware.RequestIDHeader))
}

func TestLoggerMiddleware_StoresRequestLogger(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID(), middleware.LoggerMiddleware())

	var hasLogger bool
	router.GET("/ping", func(c *gin.Context) {
		hasLogger = logger.FromContext(c.Request.Context()) != nil
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.True(t, hasLogger)
}

func TestTimeout_SetsDeadline(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.Timeout(time.Second))

	var hasDeadline bool
	router.GET("/ping", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.True(t, hasDeadline)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	cfg := testutil.NewTestConfig()
	router := testutil.SetupTestRouter()
	router.Use(middleware.CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://formulario.example.ec")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.NotEmpty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
