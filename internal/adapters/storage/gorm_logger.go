package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bozothegeek/pegasus-frontend/internal/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends GORM output to logging.Logger tagged with the sqlite backend
type gormLogger struct {
	level logger.LogLevel
}

// newGormLogger traces queries only when debug logging is on
func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return gormLogger{level: logger.Info}
	}
	return gormLogger{level: logger.Silent}
}

func (l gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	l.level = level
	return l
}

func (l gormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.print(ctx, logger.Info, slog.LevelInfo, msg, data)
}

func (l gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.print(ctx, logger.Warn, slog.LevelWarn, msg, data)
}

func (l gormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.print(ctx, logger.Error, slog.LevelError, msg, data)
}

func (l gormLogger) print(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, data []any) {
	if l.level >= min {
		logging.Logger.Log(ctx, level, fmt.Sprintf(msg, data...), "backend", "sqlite")
	}
}

// Trace logs every statement at debug level, slow ones as warnings and failures as errors
func (l gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"backend", "sqlite", "duration", elapsed, "rows", rows, "sql", sql}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Log(ctx, slog.LevelError, "Query failed", append(attrs, "error", err)...)
	case elapsed > slowQueryThreshold:
		logging.Logger.Log(ctx, slog.LevelWarn, "Slow query", attrs...)
	default:
		logging.Logger.Log(ctx, slog.LevelDebug, "Query", attrs...)
	}
}
