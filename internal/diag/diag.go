// Package diag builds the diagnostic logger used by mkicon. Diagnostics go
// to stderr so stdout stays limited to the user-facing result lines.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const timeFormat = "2006-01-02 15:04:05"

// New returns a console logger writing to w. Debug events are only emitted
// when verbose is set; otherwise warnings and errors pass through.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
