package tui

import (
	"io"

	"github.com/mrz1836/rwfile/internal/history"
	"github.com/mrz1836/rwfile/internal/stress"
)

// Output writes command results in a specific format.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
	// Report prints the result of a stress run.
	Report(r *stress.Report) error
	// Verification prints the result of a file verification.
	Verification(v *stress.Verification) error
	// History prints stored runs, most recent first.
	History(records []*history.Record) error
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
