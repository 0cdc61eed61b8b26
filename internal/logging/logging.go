// Package logging builds the console logger used by the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

type Options struct {
	Verbose bool
	Prefix  string
}

// New returns a leveled text logger writing to w. Info is the default level;
// Verbose lowers it to debug.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "taskpad"
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}
