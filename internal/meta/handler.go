package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/database"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 5 * time.Second

// Handler serves operational endpoints
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

type ServiceInfo struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
}

type CheckResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string                 `json:"status"`
	Service ServiceInfo            `json:"service"`
	Checks  map[string]CheckResult `json:"checks"`
}

// Health reports service health. The form-data service depends on the
// database, so an unreachable database makes the service unhealthy.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	response := HealthResponse{
		Status: "healthy",
		Service: ServiceInfo{
			Name:        h.cfg.App.Name,
			Environment: h.cfg.App.Env,
		},
		Checks: map[string]CheckResult{},
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check failed", "error", err)

		response.Status = "unhealthy"
		response.Checks["database"] = CheckResult{Status: "down", Error: err.Error()}
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Checks["database"] = CheckResult{Status: "up", LatencyMS: time.Since(start).Milliseconds()}
	c.JSON(http.StatusOK, response)
}
