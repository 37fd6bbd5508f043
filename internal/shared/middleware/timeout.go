package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context. Handlers and the form-data service
// observe the deadline through ctx; no response is written here.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			slog.Warn("Request deadline exceeded",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
