// Package logging provides the console logger shared by the CLI, server and viewer.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// New creates a console logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
	}).With().Timestamp().Logger()
}

// NewDefault creates a logger on stderr so stdout stays clean for command output.
func NewDefault() zerolog.Logger {
	return New(os.Stderr)
}

// Discard returns a logger that drops everything. Used by tests and the TUI.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
