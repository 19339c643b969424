package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/history"
)

// HistoryFlags holds flags specific to the history command.
type HistoryFlags struct {
	Limit int
}

func newHistoryCmd(a *app) *cobra.Command {
	flags := &HistoryFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored stress runs",
		Long: `List stress runs stored under ~/.rwfile/runs, most recent first.
Storage is controlled by history.enabled and history.keep.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryList(cmd.Context(), cmd.OutOrStdout(), a, flags)
		},
	}
	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", 20, "maximum number of runs to list (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show the report of a stored run",
		Long: `Show the full report of a stored run. RUN_ID may be any unique prefix
of the id, such as the short id printed by 'rwfile history'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd.Context(), cmd.OutOrStdout(), a, args[0])
		},
	})

	return cmd
}

func runHistoryList(ctx context.Context, w io.Writer, a *app, flags *HistoryFlags) error {
	store, err := history.NewFileStore("", a.cfg.History.Keep)
	if err != nil {
		return err
	}

	records, err := store.List(ctx, flags.Limit)
	if err != nil {
		return err
	}
	return a.output(w).History(records)
}

func runHistoryShow(ctx context.Context, w io.Writer, a *app, prefix string) error {
	store, err := history.NewFileStore("", a.cfg.History.Keep)
	if err != nil {
		return err
	}

	rec, err := findRun(ctx, store, prefix)
	if err != nil {
		return err
	}

	out := a.output(w)
	if a.format == OutputJSON {
		return out.JSON(rec)
	}
	if err := out.Report(rec.Report); err != nil {
		return err
	}
	if rec.Error != "" {
		out.Warning("run failed: " + rec.Error)
	}
	return nil
}

// findRun resolves a full id or a unique id prefix.
func findRun(ctx context.Context, store *history.FileStore, prefix string) (*history.Record, error) {
	if prefix == "" {
		return nil, errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "run id"))
	}

	records, err := store.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	var match *history.Record
	for _, rec := range records {
		if !strings.HasPrefix(rec.ID(), prefix) {
			continue
		}
		if match != nil {
			return nil, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidRunID, "%q matches more than one run", prefix))
		}
		match = rec
	}
	if match == nil {
		return nil, errors.Wrapf(errors.ErrRunNotFound, "%q", prefix)
	}
	return match, nil
}
