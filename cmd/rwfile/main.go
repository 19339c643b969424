// Package main provides the entry point for the rwfile CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/rwfile/internal/cli"
)

// Set at build time via ldflags.
//
//nolint:gochecknoglobals // build metadata
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	os.Exit(cli.ExitCodeForError(err))
}
