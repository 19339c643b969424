// Package cli provides the command-line interface for rwfile.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/rwfile/internal/config"
	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/logging"
	"github.com/mrz1836/rwfile/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// app is the state shared by the root command and its subcommands. It is
// populated in the root PersistentPreRunE.
type app struct {
	flags  *GlobalFlags
	v      *viper.Viper
	cfg    *config.Config
	format string
	logger zerolog.Logger
	logs   io.Closer
}

// output returns the writer for the selected output format.
func (a *app) output(w io.Writer) tui.Output {
	return tui.NewOutput(w, a.format)
}

// close flushes the log file, if one was opened.
func (a *app) close() {
	if a.logs != nil {
		_ = a.logs.Close()
		a.logs = nil
	}
}

// newRootCmd creates and returns the root command for the rwfile CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) (*cobra.Command, *app) {
	a := &app{
		flags:  flags,
		v:      viper.New(),
		format: OutputText,
		logger: zerolog.Nop(),
	}

	cmd := &cobra.Command{
		Use:   "rwfile",
		Short: "Exercise a shared reader/writer file lock",
		Long: `rwfile coordinates concurrent access to a single file: many readers or
exactly one writer at a time, never both.

The CLI drives a concurrent workload against a target file and verifies
that no reader ever observed a partially written record.

Examples:
  rwfile stress --file /tmp/target.txt
  rwfile stress --file /tmp/target.txt --writers 8 --readers 16 -o json
  rwfile verify --file /tmp/target.txt
  rwfile history
  rwfile config show`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	cmd.AddCommand(newStressCmd(a))
	cmd.AddCommand(newVerifyCmd(a))
	cmd.AddCommand(newHistoryCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd, a
}

// init binds flags, loads configuration and builds the logger. The logger
// is attached to the command context for zerolog.Ctx.
func (a *app) init(cmd *cobra.Command) error {
	if err := BindGlobalFlags(a.v, cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	a.format = a.v.GetString("output")
	if !IsValidOutputFormat(a.format) {
		format := a.format
		a.format = OutputText
		return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, format, ValidOutputFormats())
	}

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return errors.NewExitCode2Error(err)
	}
	a.cfg = cfg

	a.logger, a.logs = logging.New(logging.Options{
		Verbose:    a.v.GetBool("verbose"),
		Quiet:      a.v.GetBool("quiet"),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	cmd.SetContext(a.logger.WithContext(cmd.Context()))

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("output", a.format).
		Msg("command starting")
	return nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are printed to stderr in the selected output format before being
// returned; map them to a process exit status with ExitCodeForError.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd, a := newRootCmd(flags, info)
	defer a.close()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		a.output(cmd.ErrOrStderr()).Error(err)
	}
	return err
}
