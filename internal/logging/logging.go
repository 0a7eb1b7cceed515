// internal/logging/logging.go
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger for per-run diagnostics, writing to the
// app's stderr. Warnings only by default; quiet raises the bar to errors,
// verbose lowers it to debug. Timestamps are excluded so repeated runs on
// the same input produce identical bytes on both streams.
func New(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}
