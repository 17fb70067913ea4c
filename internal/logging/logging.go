// Package logging configures the slog loggers used by the command-line
// tools. The uniquepath library itself does not log; reporting is the
// responsibility of the surrounding application.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// ErrInvalidLogLevel is returned when an unknown log level name is supplied.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidLogLevel, name)
	}
}

// NewLogger builds a logger writing to w. Interactive sessions get a text
// handler; non-interactive sessions (CI, redirected output) get JSON lines
// suitable for collection.
func NewLogger(w io.Writer, level slog.Level, interactive bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if interactive {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// GenerateRunID generates a new UUID v4 for run identification
func GenerateRunID() string {
	return uuid.New().String()
}
