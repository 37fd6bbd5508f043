package logger

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithLogger returns a new context carrying logger
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or slog.Default when none is set
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With derives a context whose logger carries the extra attributes, so
// collaborators called with it log under the same request and stage.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
