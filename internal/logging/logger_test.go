package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rwfile/internal/constants"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zerolog.Level
	}{
		{"default is info", false, false, zerolog.InfoLevel},
		{"verbose is debug", true, false, zerolog.DebugLevel},
		{"quiet is warn", false, true, zerolog.WarnLevel},
		{"verbose wins over quiet", true, true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.verbose, tt.quiet))
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(false, false, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "/tmp/x").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"event":"visible"`)
	assert.Contains(t, out, `"ts":`)
	assert.Contains(t, out, `"path":"/tmp/x"`)
}

func TestNew_WritesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer := New(Options{File: true, Dir: dir, Quiet: true})
	logger.Warn().Msg("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, constants.CLILogFileName)) // #nosec G304 -- test code using safe temp dir
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_FileDisabled(t *testing.T) {
	dir := t.TempDir()

	_, closer := New(Options{Dir: dir})
	require.NoError(t, closer.Close())

	_, err := os.Stat(filepath.Join(dir, constants.CLILogFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestHome(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(constants.EnvHome, "/opt/rwfile")
		home, err := Home()
		require.NoError(t, err)
		assert.Equal(t, "/opt/rwfile", home)
	})

	t.Run("defaults under user home", func(t *testing.T) {
		t.Setenv(constants.EnvHome, "")
		home, err := Home()
		require.NoError(t, err)
		assert.Equal(t, constants.RWFileHome, filepath.Base(home))
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 7, orDefault(7, 3))
	assert.Equal(t, 3, orDefault(0, 3))
	assert.Equal(t, 3, orDefault(-1, 3))
}
