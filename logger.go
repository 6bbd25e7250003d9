package trackgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with trackgo-specific helpers.
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

// WithViewCount adds a view count field to the logger.
func (l *Logger) WithViewCount(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("views", n),
	}
}

// WithTrackCount adds a track count field to the logger.
func (l *Logger) WithTrackCount(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("tracks", n),
	}
}

// LogBuild logs the completion of a fusion pass.
func (l *Logger) LogBuild(edges uint64, nodes, classes int) {
	l.Debug("build completed",
		"edges", edges,
		"nodes", nodes,
		"classes", classes,
	)
}

// LogFilter logs the outcome of a filter pass.
func (l *Logger) LogFilter(clearForks bool, minTrackLength int, before, after int) {
	l.Debug("filter completed",
		"clear_forks", clearForks,
		"min_track_length", minTrackLength,
		"classes_before", before,
		"classes_after", after,
	)
}

// LogExport logs a track table materialization.
func (l *Logger) LogExport(tracks int) {
	l.Debug("export completed",
		"tracks", tracks,
	)
}
