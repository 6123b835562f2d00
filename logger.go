package rvlike

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with likelihood-specific helpers.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKind adds the likelihood kind ("rv", "composite", "gp").
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("likelihood", kind),
	}
}

// WithInstrument adds an instrument label.
func (l *Logger) WithInstrument(label string) *Logger {
	return &Logger{
		Logger: l.Logger.With("instrument", label),
	}
}

// LogNonPositiveDefinite logs a rejected covariance matrix.
func (l *Logger) LogNonPositiveDefinite(n int, op string) {
	l.Warn("non-positive definite kernel detected",
		"op", op,
		"points", n,
	)
}

// LogUndefinedAICc logs an AICc evaluation with too few data points.
func (l *Logger) LogUndefinedAICc(n, k int) {
	l.Warn("free parameters >= data points, AICc is undefined",
		"n", n,
		"k", k,
	)
}

// LogDuplicateEpochs logs a GP dataset with repeated epochs.
func (l *Logger) LogDuplicateEpochs(n int) {
	l.Debug("dataset has repeated epochs, covariance may be singular without noise",
		"points", n,
	)
}
