package testutil

import (
	"time"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "contact-intake-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            1521,
			Service:         "test",
			User:            "test",
			Password:        "test",
			SSL:             false,
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
