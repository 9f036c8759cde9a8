package countvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with countvec-specific context.
// This provides structured logging with consistent field names.
//
// Range gate failures are never logged; only lifecycle and transfer events are.
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

// WithBounds adds the logical bounds of a vector to the logger.
func (l *Logger) WithBounds(first, last int) *Logger {
	return &Logger{
		Logger: l.Logger.With("first", first, "last", last),
	}
}

// LogCreate logs a vector construction.
func (l *Logger) LogCreate(size, base int, bytes int64, err error) {
	if err != nil {
		l.Error("vector create failed",
			"size", size,
			"base", base,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Debug("vector created",
			"size", size,
			"base", base,
			"bytes", bytes,
		)
	}
}

// LogClose logs the release of a vector.
func (l *Logger) LogClose(size int, bytes int64) {
	l.Debug("vector released",
		"size", size,
		"bytes", bytes,
	)
}

// LogWrite logs a streamed range transfer.
func (l *Logger) LogWrite(ctx context.Context, from, to int, written int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "range write failed",
			"from", from,
			"to", to,
			"written", written,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "range write completed",
			"from", from,
			"to", to,
			"written", written,
		)
	}
}
