package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/router"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/validator"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env, logLevel := parseFlags()

	logger.Setup(env, logLevel)
	slog.Info("Server initializing", "env", env)

	if err := run(env); err != nil {
		slog.Error("Server initialization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() (string, string) {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	logLevel := flag.String("log-level", "", "Log level override (debug|info|warn|error)")
	flag.Parse()
	return *env, *logLevel
}

// run contains the main application logic
func run(env string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Database close failed", "error", err)
		}
	}()

	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Register common validators before any form is built
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	if err := router.Setup(ginEngine, cfg, db, prometheus.DefaultRegisterer, prometheus.DefaultGatherer); err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	slog.Info("Server configured", "env", cfg.App.Env)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("Server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
