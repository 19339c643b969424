package cli

import (
	"bytes"
	"testing"

	"github.com/mrz1836/rwfile/internal/constants"
)

// isolate keeps commands away from the real home directory and config
// files, and disables the log file.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(constants.EnvHome, t.TempDir())
	t.Setenv("RWFILE_LOG_FILE", "false")
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd, a := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	t.Cleanup(a.close)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
