// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the goldcheck logger: console-formatted on stderr so
// report output on stdout stays machine-parseable. Verbose runs log at
// debug level, normal runs at warn.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "goldcheck").Logger()
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}
