package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LachsProducktions/mediascan/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "mediascan",
		Short: "Local media-library inventory and reconciliation tool",
		Long: `mediascan walks directory trees, classifies files by media type and
extracts metadata (size, duration, optional content hash). Two
inventories - live folders or saved snapshots - can be compared to
report which files are shared, added, removed or changed. All
operations are one-shot and read-only; files are never modified.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewScanCommand())
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
