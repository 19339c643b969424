package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rwfile/internal/config"
	"github.com/mrz1836/rwfile/internal/constants"
	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/flock"
	"github.com/mrz1836/rwfile/internal/history"
	"github.com/mrz1836/rwfile/internal/rwfile"
	"github.com/mrz1836/rwfile/internal/signal"
	"github.com/mrz1836/rwfile/internal/stress"
)

// StressFlags holds flags specific to the stress command. Zero values
// fall back to the loaded configuration.
type StressFlags struct {
	File       string
	Writers    int
	Readers    int
	Iterations int
	Marker     string
	Timeout    time.Duration
}

// overrides converts the flags into a config overlay for LoadWithOverrides.
func (f *StressFlags) overrides() *config.Config {
	return &config.Config{
		Stress: config.StressConfig{
			Writers:    f.Writers,
			Readers:    f.Readers,
			Iterations: f.Iterations,
			Marker:     f.Marker,
			Timeout:    f.Timeout,
		},
	}
}

func newStressCmd(a *app) *cobra.Command {
	flags := &StressFlags{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run concurrent readers and writers against a file",
		Long: `Truncate the target, then run writers that append a marker and readers
that read a random whole marker back, all through the shared file lock.
The run fails if any reader sees anything but the marker or if the final
file is not exactly writers × iterations markers.

A lock file next to the target (<file>.lock) keeps two rwfile processes
from running against the same target. Ctrl+C stops the run after the
operations in flight finish.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStress(cmd.Context(), cmd.OutOrStdout(), a, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "target file (created if missing, truncated before the run)")
	cmd.Flags().IntVar(&flags.Writers, "writers", 0, "number of writer goroutines (default from config)")
	cmd.Flags().IntVar(&flags.Readers, "readers", 0, "number of reader goroutines (default from config)")
	cmd.Flags().IntVar(&flags.Iterations, "iterations", 0, "operations per worker (default from config)")
	cmd.Flags().StringVar(&flags.Marker, "marker", "", "record appended by writers (default from config)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "bound for the whole run (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runStress(ctx context.Context, w io.Writer, a *app, flags *StressFlags) error {
	if flags.File == "" {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "--file"))
	}

	cfg, err := config.LoadWithOverrides(ctx, flags.overrides())
	if err != nil {
		return err
	}

	lock, err := flock.Acquire(flags.File + constants.RunLockSuffix)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	handler := signal.NewHandler(ctx)
	defer handler.Stop()

	runCtx := handler.Context()
	if cfg.Stress.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, cfg.Stress.Timeout)
		defer cancel()
	}

	f := rwfile.New(flags.File, rwfile.WithLogger(a.logger))
	report, err := stress.Run(runCtx, f, stress.Config{
		Writers:    cfg.Stress.Writers,
		Readers:    cfg.Stress.Readers,
		Iterations: cfg.Stress.Iterations,
		Marker:     cfg.Stress.Marker,
	})
	if report != nil {
		if cfg.History.Enabled {
			saveRun(ctx, a, cfg.History.Keep, history.NewRecord(report, err))
		}
		if renderErr := a.output(w).Report(report); renderErr != nil && err == nil {
			err = renderErr
		}
	}
	return err
}

// saveRun stores the record. A failure to store is logged, not returned:
// the run itself already finished.
func saveRun(ctx context.Context, a *app, keep int, rec *history.Record) {
	store, err := history.NewFileStore("", keep)
	if err == nil {
		err = store.Save(ctx, rec)
	}
	if err != nil {
		a.logger.Warn().Err(err).Str("run_id", rec.ID()).Msg("failed to store run")
		return
	}
	a.logger.Debug().Str("run_id", rec.ID()).Str("dir", store.Dir()).Msg("run stored")
}
