package navgraph

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with navgraph-specific context.
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

// WithK adds a k (result count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithLayer adds a layer field to the logger.
func (l *Logger) WithLayer(layer int) *Logger {
	return &Logger{
		Logger: l.Logger.With("layer", layer),
	}
}

// WithEF adds a beam width field to the logger.
func (l *Logger) WithEF(ef int) *Logger {
	return &Logger{
		Logger: l.Logger.With("ef", ef),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAddNode logs a node insertion.
func (l *Logger) LogAddNode(ctx context.Context, id string, maxLayer int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add node failed",
			"id", id,
			"max_layer", maxLayer,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "node added",
			"id", id,
			"max_layer", maxLayer,
		)
	}
}

// LogConnect logs an edge mutation.
func (l *Logger) LogConnect(ctx context.Context, a, b string, layer int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "connect failed",
			"a", a,
			"b", b,
			"layer", layer,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nodes connected",
			"a", a,
			"b", b,
			"layer", layer,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, k, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"k", k,
			"results", resultsFound,
		)
	}
}

// LogBatchSearch logs a batch search operation.
func (l *Logger) LogBatchSearch(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch search failed",
			"queries", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch search completed",
			"queries", count,
		)
	}
}
