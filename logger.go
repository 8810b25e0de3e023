package optics

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with optics-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogFit logs an OPTICS ordering run.
func (l *Logger) LogFit(ctx context.Context, points, minSamples int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"points", points,
			"min_samples", minSamples,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"points", points,
			"min_samples", minSamples,
			"elapsed", elapsed,
		)
	}
}

// LogExtract logs a cluster extraction.
func (l *Logger) LogExtract(ctx context.Context, method Method, labels Labels) {
	l.DebugContext(ctx, "clusters extracted",
		"method", method.String(),
		"clusters", labels.NumClusters(),
		"noise", labels.NoiseCount(),
	)
}

// LogLoad logs loading an input array.
func (l *Logger) LogLoad(ctx context.Context, uri string, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"uri", uri,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"uri", uri,
			"rows", rows,
			"cols", cols,
		)
	}
}

// LogWrite logs writing an output file.
func (l *Logger) LogWrite(ctx context.Context, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "file written",
			"filename", filename,
		)
	}
}
