// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger that backs slog for the whole process.
// Library packages only emit debug records, so a quiet run prints nothing.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "bs",
		Level:           level,
		ReportTimestamp: verbose,
	})
}

// installLogger makes logger the slog default and returns a function that
// restores the previous default.
func installLogger(logger *log.Logger) (restore func()) {
	prev := slog.Default()
	slog.SetDefault(slog.New(logger))
	return func() { slog.SetDefault(prev) }
}
