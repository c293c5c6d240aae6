package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipex/backend/config"
)

// New builds the application logger. Development output goes through the
// console writer; every other environment logs JSON.
func New(level string) zerolog.Logger {
	var out io.Writer = os.Stderr
	if config.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, level)
}

// NewWithWriter builds a logger writing to out at the given level.
// Unknown levels fall back to info.
func NewWithWriter(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
