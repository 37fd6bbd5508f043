package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
)

// Server owns the HTTP server lifecycle
type Server struct {
	cfg    *config.Config
	server *http.Server
}

// New creates a server for handler using the configured port and timeouts
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    1 << 20, // 1 MB
		},
	}
}

// Port returns the server port
func (s *Server) Port() int {
	return s.cfg.App.Port
}

// Start blocks serving HTTP until the server is shut down
func (s *Server) Start() error {
	slog.Info("Server starting",
		"port", s.cfg.App.Port,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
	)

	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
