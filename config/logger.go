package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for the configured environment and level,
// writing to stdout. See NewLoggerTo.
func (c *Config) NewLogger() *slog.Logger {
	return NewLoggerTo(os.Stdout, c.Environment, c.LogLevel)
}

// NewLoggerTo returns a slog.Logger writing to w.
// Production uses JSON handler; otherwise text handler.
// level may be: debug, info, warn, error (default: info).
func NewLoggerTo(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
