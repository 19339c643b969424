package cli

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rwfile/internal/errors"
)

func TestVerifyCmd(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(target, []byte("ababab"), 0o600))

	output, err := execute(t, "verify", "--file", target, "--marker", "ab")
	require.NoError(t, err)
	assert.Contains(t, output, "Verify "+target)
	assert.Contains(t, output, "✓ 3 records verified")
}

func TestVerifyCmd_JSON(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(target, []byte("Hello worldHello world"), 0o600))

	output, err := execute(t, "verify", "-o", "json", "--file", target)
	require.NoError(t, err, "marker defaults to the configured one")

	var v struct {
		Records int64 `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &v))
	assert.Equal(t, int64(2), v.Records)
}

func TestVerifyCmd_Mismatch(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(target, []byte("abac"), 0o600))

	_, err := execute(t, "verify", "--file", target, "--marker", "ab")
	require.ErrorIs(t, err, errors.ErrMarkerMismatch)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestVerifyCmd_MissingTarget(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "verify", "--file", filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
