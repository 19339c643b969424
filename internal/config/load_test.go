package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rwfile/internal/constants"
	"github.com/mrz1836/rwfile/internal/errors"
)

// isolate points the global config at an empty directory and moves into a
// fresh working directory so no real config files are picked up.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv(constants.EnvHome, home)
	t.Chdir(work)
	return home, work
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), constants.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), constants.FilePerm))
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err, "Load should not fail when no config file exists")
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ReadsGlobalAndProjectConfig(t *testing.T) {
	home, work := isolate(t)

	writeConfig(t, filepath.Join(home, "config.yaml"), `
stress:
  writers: 3
  readers: 4
`)
	writeConfig(t, filepath.Join(work, ".rwfile", "config.yaml"), `
stress:
  readers: 8
`)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Stress.Writers, "global value should persist")
	assert.Equal(t, 8, cfg.Stress.Readers, "project config should override global")
	assert.Equal(t, constants.DefaultIterations, cfg.Stress.Iterations)
}

func TestLoad_EnvVarOverridesConfigFile(t *testing.T) {
	_, work := isolate(t)

	writeConfig(t, filepath.Join(work, ".rwfile", "config.yaml"), `
stress:
  marker: from-file
`)
	t.Setenv("RWFILE_STRESS_MARKER", "from-env")
	t.Setenv("RWFILE_STRESS_ITERATIONS", "7")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Stress.Marker)
	assert.Equal(t, 7, cfg.Stress.Iterations)
}

func TestLoadFromPaths_ProjectConfigOverridesGlobal(t *testing.T) {
	ctx := context.Background()

	globalConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, globalConfig, `
stress:
  writers: 2
  iterations: 50
log:
  max_backups: 9
`)

	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, `
stress:
  writers: 6
`)

	cfg, err := LoadFromPaths(ctx, projectConfig, globalConfig)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Stress.Writers)
	assert.Equal(t, 50, cfg.Stress.Iterations)
	assert.Equal(t, 9, cfg.Log.MaxBackups)
}

func TestLoadFromPaths_MissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPaths(context.Background(),
		filepath.Join(dir, "missing-project.yaml"),
		filepath.Join(dir, "missing-global.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_DurationParsing(t *testing.T) {
	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, `
stress:
  timeout: 90s
`)

	cfg, err := LoadFromPaths(context.Background(), projectConfig, "")
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Stress.Timeout)
}

func TestLoadFromPaths_InvalidConfigFile(t *testing.T) {
	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, "stress: [unterminated")

	_, err := LoadFromPaths(context.Background(), projectConfig, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project config")
}

func TestLoadFromPaths_ValidationFailure(t *testing.T) {
	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, projectConfig, `
stress:
  writers: 0
`)

	_, err := LoadFromPaths(context.Background(), projectConfig, "")
	require.ErrorIs(t, err, errors.ErrConfigInvalidStress)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadWithOverrides_AppliesCLIOverrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOverrides(context.Background(), &Config{
		Stress: StressConfig{Writers: 2, Marker: "abc", Timeout: time.Minute},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Stress.Writers)
	assert.Equal(t, "abc", cfg.Stress.Marker)
	assert.Equal(t, time.Minute, cfg.Stress.Timeout)
	assert.Equal(t, constants.DefaultReaders, cfg.Stress.Readers, "zero overrides are ignored")
}

func TestLoadWithOverrides_NilOverrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOverrides(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadWithOverrides_RevalidatesOverrides(t *testing.T) {
	isolate(t)

	_, err := LoadWithOverrides(context.Background(), &Config{
		Stress: StressConfig{Iterations: -1},
	})
	require.ErrorIs(t, err, errors.ErrConfigInvalidStress)
	assert.Contains(t, err.Error(), "after overrides")
}

func TestIsConfigNotFoundError(t *testing.T) {
	t.Parallel()

	assert.False(t, isConfigNotFoundError(nil))
	assert.False(t, isConfigNotFoundError(errors.ErrConfigNil))
}
