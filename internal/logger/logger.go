// Package logger configures the zerolog logger used for diagnostics.
// Logs always go to stderr so that stdout carries only the summary.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w.
// Verbose enables debug level; otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}
