package router

import (
	"log/slog"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/contact"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/formdata"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/meta"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all application-specific routes using dependency injection.
// reg receives the application metrics; gatherer serves them on the metrics path.
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, reg prometheus.Registerer, gatherer prometheus.Gatherer) error {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	appMetrics := metrics.New(reg)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// validator engine shared with gin binding
	validate, err := validator.GetValidator()
	if err != nil {
		return err
	}

	// downstream form-data service
	formDataService := formdata.NewService(db.DB, formdata.NewRepository())

	// form + handler
	form := contact.NewForm(validate, formDataService, appMetrics)
	contactHandler := contact.NewContactHandler(form)

	// API v1 routes
	contactV1 := router.Group("/api/v1/contact-form")
	{
		contactV1.GET("", contactHandler.ShowForm)
		contactV1.POST("", contactHandler.Submit)
	}

	slog.Info("Routes registered", "metrics_enabled", cfg.Metrics.Enabled)
	return nil
}
