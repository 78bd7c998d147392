package fastarr

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fastarr-specific context.
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

// WithLength adds a length field to the logger (useful for tagging
// container operations).
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// WithShape adds rows and cols fields to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogSnapshot logs a snapshot write.
func (l *Logger) LogSnapshot(ctx context.Context, codecName string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"codec", codecName,
			"length", n,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot written",
			"codec", codecName,
			"length", n,
		)
	}
}

// LogFill logs a file fill operation.
func (l *Logger) LogFill(ctx context.Context, path string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "file fill failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "file fill completed",
			"path", path,
			"bytes", n,
		)
	}
}

// LogParallelDrain logs a parallel traversal.
func (l *Logger) LogParallelDrain(ctx context.Context, workers, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parallel drain failed",
			"workers", workers,
			"length", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parallel drain completed",
			"workers", workers,
			"length", n,
		)
	}
}
