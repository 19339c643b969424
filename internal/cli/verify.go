package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rwfile/internal/errors"
	"github.com/mrz1836/rwfile/internal/rwfile"
	"github.com/mrz1836/rwfile/internal/stress"
)

// VerifyFlags holds flags specific to the verify command.
type VerifyFlags struct {
	File   string
	Marker string
}

func newVerifyCmd(a *app) *cobra.Command {
	flags := &VerifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a file holds only whole markers",
		Long: `Read the target under a shared lock and check that it consists of
complete copies of the marker and nothing else.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), cmd.OutOrStdout(), a, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "file to verify")
	cmd.Flags().StringVar(&flags.Marker, "marker", "", "expected record (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runVerify(_ context.Context, w io.Writer, a *app, flags *VerifyFlags) error {
	if flags.File == "" {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "--file"))
	}

	marker := flags.Marker
	if marker == "" {
		marker = a.cfg.Stress.Marker
	}

	f := rwfile.New(flags.File, rwfile.WithLogger(a.logger))
	v, err := stress.Verify(f, marker)
	if err != nil {
		return err
	}
	return a.output(w).Verification(v)
}
