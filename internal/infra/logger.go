package infra

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Output goes to stderr because stdout
// carries the JSON summaries printed by the CLI. level overrides the
// environment default (debug in development, info elsewhere).
func NewLogger(appEnv, level string) zerolog.Logger {
	return newLogger(os.Stderr, appEnv, level)
}

func newLogger(w io.Writer, appEnv, level string) zerolog.Logger {
	dev := appEnv == "development"
	lvl := zerolog.InfoLevel
	if dev {
		lvl = zerolog.DebugLevel
	}
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		lvl = parsed
	}

	if dev {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Logger lets packages accept a logger without importing zerolog directly.
type Logger = zerolog.Logger

// NopLogger returns a logger that discards everything. Components fall back to
// it when constructed without one.
func NopLogger() *Logger {
	l := zerolog.Nop()
	return &l
}
