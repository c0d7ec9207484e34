// Package logging constructs the application logger.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger writing JSON to stdout at the given level.
// Unknown level strings fall back to info.
func New(level string) zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger for local development.
func NewConsole(level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level string to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
