package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment.
// level overrides the environment default when it names a valid slog level.
func Setup(env, level string) {
	slog.SetDefault(New(os.Stdout, env, level))
	slog.Info("Logger initialized", "env", env, "level", resolveLevel(env, level).String())
}

// New builds a logger writing to w: JSON in production, text elsewhere
func New(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: resolveLevel(env, level),
	}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func resolveLevel(env, level string) slog.Level {
	if level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err == nil {
			return l
		}
	}

	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
