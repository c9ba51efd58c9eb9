package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates the diagnostics logger. Results never go through it, only
// progress and ignored input, so it always writes to w (normally stderr).
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "gitrevno",
		Level:  level,
	})
}
