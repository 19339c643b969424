package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/stress"
)

const labelWidth = 16

// TTYOutput provides styled terminal output using Lip Gloss.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a new TTYOutput. It respects NO_COLOR.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Success outputs a success message with a ✓ icon.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error outputs an error with a ✗ icon. Known errors get a friendly
// message with the raw error beneath it and a suggested action.
func (o *TTYOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+msg))
	if details := err.Error(); details != msg {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  "+details))
	}
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// Warning outputs a warning message with a ⚠ icon.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info outputs an informational message.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// JSON outputs a value as formatted JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// Report prints a stress report as labelled rows.
func (o *TTYOutput) Report(r *stress.Report) error {
	o.heading("Stress run " + r.RunID)
	o.row("path", r.Path)
	o.row("workers", fmt.Sprintf("%d writers, %d readers × %d iterations",
		r.Config.Writers, r.Config.Readers, r.Config.Iterations))
	o.row("marker", strconv.Quote(r.Config.Marker))
	o.row("writes", strconv.FormatInt(r.Writes, 10))
	o.row("reads", fmt.Sprintf("%d (%d empty)", r.Reads, r.EmptyReads))
	o.row("size", fmt.Sprintf("%d bytes (expected %d)", r.Size, r.ExpectedSize))
	o.row("elapsed", r.Elapsed.Round(time.Millisecond).String())
	o.row("spins", strconv.FormatUint(r.Lock.Spins, 10))
	o.row("rollbacks", strconv.FormatUint(r.Lock.Rollbacks, 10))
	if r.Lock.Reclaimed > 0 {
		o.Warning(fmt.Sprintf("%d guards were reclaimed without Close", r.Lock.Reclaimed))
	}

	if r.Passed() {
		o.Success(fmt.Sprintf("%d records verified", r.Verification.Records))
	}
	return nil
}

// Verification prints a verification result.
func (o *TTYOutput) Verification(v *stress.Verification) error {
	o.heading("Verify " + v.Path)
	o.row("marker", strconv.Quote(v.Marker))
	o.row("size", fmt.Sprintf("%d bytes", v.Size))
	o.Success(fmt.Sprintf("%d records verified", v.Records))
	return nil
}

func (o *TTYOutput) heading(s string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Heading.Render(s))
}

func (o *TTYOutput) row(label, value string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Label.Render(label)+value)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
