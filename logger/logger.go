// Package logger provides the configurable logger shared by the long
// running solvers. Arithmetic stays silent; only the solvers trace.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the package logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable routes the package logger to io.Discard.
func Disable() {
	logger = zerolog.New(io.Discard)
}
