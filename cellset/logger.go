package cellset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cellset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithResolution adds a resolution field to the logger.
func (l *Logger) WithResolution(res int) *Logger {
	return &Logger{
		Logger: l.Logger.With("resolution", res),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogShard logs completion of one bulk-build shard.
func (l *Logger) LogShard(ctx context.Context, shard, count int) {
	l.DebugContext(ctx, "shard completed",
		"shard", shard,
		"count", count,
	)
}

// LogBuild logs a bulk build operation.
func (l *Logger) LogBuild(ctx context.Context, inputs int, cardinality uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bulk build failed",
			"inputs", inputs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "bulk build completed",
			"inputs", inputs,
			"cardinality", cardinality,
		)
	}
}
