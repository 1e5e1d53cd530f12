// Package logger builds the diagnostic logger. The terminal belongs to the
// UI, so records go to a file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"verse-order/internal/config"
)

const service = "verse-order"

// Open creates the log file from cfg and returns a logger writing JSON to
// it. The returned closer must be called on exit. An empty file name
// discards all records.
func Open(cfg config.Logging) (*slog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return New(io.Discard, cfg.Level), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, cfg.Level), f, nil
}

// New returns a JSON logger on w with a "service" attribute on every record.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler).With("service", service)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
