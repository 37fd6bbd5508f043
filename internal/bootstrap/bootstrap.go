package bootstrap

import (
	"io"
	"log/slog"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles the engine setup shared by every route
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the common middleware chain
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Request logging goes through slog
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
}
