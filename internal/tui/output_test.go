package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/rwfile"
	"github.com/mrz1836/rwfile/internal/stress"
)

func sampleReport() *stress.Report {
	return &stress.Report{
		RunID:        "6f1c0d5e-9a43-4c57-9a0f-2f4e3b8d1c11",
		Path:         "/tmp/target.txt",
		Config:       stress.Config{Writers: 5, Readers: 10, Iterations: 1000, Marker: "Hello world"},
		Writes:       5000,
		Reads:        10000,
		EmptyReads:   12,
		Size:         55000,
		ExpectedSize: 55000,
		Elapsed:      1234567 * time.Microsecond,
		Lock:         rwfile.Stats{Reads: 10001, Writes: 5001, Spins: 42},
		Verification: &stress.Verification{
			Path:    "/tmp/target.txt",
			Marker:  "Hello world",
			Size:    55000,
			Records: 5000,
		},
	}
}

func TestNewOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.IsType(t, &JSONOutput{}, NewOutput(&buf, FormatJSON))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, FormatText))
	assert.IsType(t, &TTYOutput{}, NewOutput(&buf, ""))
}

func TestHasColorSupport(t *testing.T) {
	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, HasColorSupport())
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, HasColorSupport())
	})
}

func TestTTYOutput_Messages(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := NewTTYOutput(&buf)

	out.Success("done")
	out.Warning("careful")
	out.Info("note")

	assert.Equal(t, "✓ done\n⚠ careful\nnote\n", buf.String())
}

func TestTTYOutput_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("known error shows details and action", func(t *testing.T) {
		var buf bytes.Buffer
		NewTTYOutput(&buf).Error(errors.Wrap(errors.ErrLockHeld, "/tmp/target.txt.lock"))

		got := buf.String()
		assert.Contains(t, got, "✗ Another rwfile process is already running against this target.")
		assert.Contains(t, got, "/tmp/target.txt.lock: target is locked by another process")
		assert.Contains(t, got, "▸ Try: Wait for the other run to finish")
	})

	t.Run("unknown error prints once", func(t *testing.T) {
		var buf bytes.Buffer
		NewTTYOutput(&buf).Error(fmt.Errorf("boom"))

		assert.Equal(t, "✗ boom\n", buf.String())
	})
}

func TestTTYOutput_Report(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, NewTTYOutput(&buf).Report(sampleReport()))

	got := buf.String()
	assert.Contains(t, got, "Stress run 6f1c0d5e-9a43-4c57-9a0f-2f4e3b8d1c11")
	assert.Contains(t, got, "5 writers, 10 readers × 1000 iterations")
	assert.Contains(t, got, `"Hello world"`)
	assert.Contains(t, got, "10000 (12 empty)")
	assert.Contains(t, got, "55000 bytes (expected 55000)")
	assert.Contains(t, got, "1.235s")
	assert.Contains(t, got, "✓ 5000 records verified")
	assert.NotContains(t, got, "reclaimed")
}

func TestTTYOutput_ReportFailedRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := sampleReport()
	r.Verification = nil
	r.Lock.Reclaimed = 2

	var buf bytes.Buffer
	require.NoError(t, NewTTYOutput(&buf).Report(r))

	got := buf.String()
	assert.Contains(t, got, "⚠ 2 guards were reclaimed without Close")
	assert.NotContains(t, got, "verified")
}

func TestTTYOutput_Verification(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, NewTTYOutput(&buf).Verification(sampleReport().Verification))

	got := buf.String()
	assert.Contains(t, got, "Verify /tmp/target.txt")
	assert.Contains(t, got, "55000 bytes")
	assert.Contains(t, got, "✓ 5000 records verified")
}

func TestJSONOutput_Report(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewJSONOutput(&buf).Report(sampleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "6f1c0d5e-9a43-4c57-9a0f-2f4e3b8d1c11", got["run_id"])
	assert.InDelta(t, 55000, got["size"], 0)
	assert.Contains(t, got, "lock")
	assert.Contains(t, got, "verification")
}

func TestJSONOutput_Messages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	out.Success("done")

	var msg jsonMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
	assert.Equal(t, jsonMessage{Type: "success", Message: "done"}, msg)
}

func TestJSONOutput_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONOutput(&buf).Error(errors.Wrapf(errors.ErrMarkerMismatch, "offset %d", 11))

	var got jsonError
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got.Type)
	assert.Equal(t, "A reader observed bytes that are not a complete marker.", got.Message)
	assert.Equal(t, "offset 11: marker mismatch", got.Details)
	assert.NotEmpty(t, got.Suggestion)
}
