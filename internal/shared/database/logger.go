package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts slog for GORM
type GormLogger struct {
	logger               *slog.Logger
	SlowThreshold        time.Duration
	IgnoreRecordNotFound bool
	// HideSQL drops statements from log lines. Bound parameters carry
	// national IDs and phone numbers, so SQL is only shown in local/dev.
	HideSQL  bool
	LogLevel gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger writing through slog
func NewGormLogger(cfg *config.Config) *GormLogger {
	logLevel := gormlogger.Info
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	return &GormLogger{
		logger:               slog.With("component", "gorm"),
		SlowThreshold:        200 * time.Millisecond,
		IgnoreRecordNotFound: true,
		HideSQL:              !cfg.IsDevelopment(),
		LogLevel:             logLevel,
	}
}

// LogMode sets the log level
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries with timing information
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.HideSQL {
		attrs = append(attrs, "sql", sql)
	}

	switch {
	case err != nil && l.LogLevel >= gormlogger.Error && (!errors.Is(err, gorm.ErrRecordNotFound) || !l.IgnoreRecordNotFound):
		l.logger.ErrorContext(ctx, "Database query error", append(attrs, "error", err)...)

	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= gormlogger.Warn:
		l.logger.WarnContext(ctx, "Slow SQL query detected", append(attrs, "threshold", l.SlowThreshold.String())...)

	case l.LogLevel >= gormlogger.Info:
		l.logger.DebugContext(ctx, "SQL query executed", attrs...)
	}
}
