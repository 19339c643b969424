package tui

import (
	"io"

	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/history"
	"github.com/mrz1836/rwfile/internal/stress"
)

// JSONOutput provides structured JSON output for scripts and pipelines.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Success outputs a success message as JSON.
func (o *JSONOutput) Success(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "success", Message: msg})
}

// Error outputs an error as JSON.
func (o *JSONOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	e := jsonError{
		Type:       "error",
		Message:    msg,
		Suggestion: action,
	}
	if details := err.Error(); details != e.Message {
		e.Details = details
	}
	_ = encodeJSON(o.w, e)
}

// Warning outputs a warning message as JSON.
func (o *JSONOutput) Warning(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "warning", Message: msg})
}

// Info outputs an informational message as JSON.
func (o *JSONOutput) Info(msg string) {
	_ = encodeJSON(o.w, jsonMessage{Type: "info", Message: msg})
}

// JSON outputs a value as formatted JSON.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// Report outputs the report object.
func (o *JSONOutput) Report(r *stress.Report) error {
	return encodeJSON(o.w, r)
}

// Verification outputs the verification object.
func (o *JSONOutput) Verification(v *stress.Verification) error {
	return encodeJSON(o.w, v)
}

// History outputs the records as a JSON array.
func (o *JSONOutput) History(records []*history.Record) error {
	if records == nil {
		records = []*history.Record{}
	}
	return encodeJSON(o.w, records)
}
