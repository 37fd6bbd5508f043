package middleware

import (
	"log/slog"
	"time"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware binds a request-scoped slog logger to the request context
// and writes one access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}

		// Handlers attach errors with c.Error
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		const msg = "Request processed"
		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
