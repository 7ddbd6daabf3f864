package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LachsProducktions/mediascan/pkg/compare"
	"github.com/LachsProducktions/mediascan/pkg/config"
	"github.com/LachsProducktions/mediascan/pkg/models"
)

// CompareFlags holds compare command flag values
type CompareFlags struct {
	IncludeHash bool
	Export      string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command group
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two inventories",
		Long: `Compare two inventories and report which files are shared, added,
removed or changed. Sides may be live folders or saved snapshots.`,
	}

	cmd.PersistentFlags().BoolVar(&compareFlags.IncludeHash, "hash", false, "compute content hashes while scanning")
	cmd.PersistentFlags().StringVar(&compareFlags.Export, "export", "", "write the comparison summary to this file")

	cmd.AddCommand(newCompareFoldersCommand())
	cmd.AddCommand(newCompareSnapshotCommand())
	cmd.AddCommand(newCompareSnapshotsCommand())

	return cmd
}

func newCompareFoldersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "folders <left> <right>",
		Short: "Compare two folders by scanning both fresh",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureDir("left", args[0]); err != nil {
				return err
			}
			if err := ensureDir("right", args[1]); err != nil {
				return err
			}

			return withComparer(func(cfg *config.Config, comparer *compare.Comparer) (*compare.Report, error) {
				bar := newProgressBar(cfg.Output.Progress && !quiet(cfg))
				defer bar.finish()
				return comparer.Folders(cmd.Context(), args[0], args[1], compare.Options{
					IncludeHash: compareFlags.IncludeHash,
					Limiter:     hashLimiter(cfg),
					Progress:    bar.update,
				})
			})
		},
	}
}

func newCompareSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <snapshot> <folder>",
		Short: "Compare a saved snapshot against a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureFile("snapshot", args[0]); err != nil {
				return err
			}
			if err := ensureDir("folder", args[1]); err != nil {
				return err
			}

			return withComparer(func(cfg *config.Config, comparer *compare.Comparer) (*compare.Report, error) {
				bar := newProgressBar(cfg.Output.Progress && !quiet(cfg))
				defer bar.finish()
				return comparer.SnapshotVsFolder(cmd.Context(), args[0], args[1], compare.Options{
					IncludeHash: compareFlags.IncludeHash,
					Limiter:     hashLimiter(cfg),
					Progress:    bar.update,
				})
			})
		},
	}
}

func newCompareSnapshotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots <left> <right>",
		Short: "Compare two saved snapshots without scanning",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureFile("left", args[0]); err != nil {
				return err
			}
			if err := ensureFile("right", args[1]); err != nil {
				return err
			}

			return withComparer(func(cfg *config.Config, comparer *compare.Comparer) (*compare.Report, error) {
				return comparer.Snapshots(args[0], args[1]), nil
			})
		},
	}
}

// withComparer wires config, logging and the comparer, runs the
// comparison, then renders and optionally exports the report.
func withComparer(run func(*config.Config, *compare.Comparer) (*compare.Report, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	report, err := run(cfg, newComparer(cfg, logger))
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if !quiet(cfg) {
		fmt.Fprintln(os.Stdout, renderEntries(report.Entries))

		counts := statusCounts(report)
		fmt.Fprintf(os.Stdout, "\n%s entries: %d same, %d differ, %d only left, %d only right\n",
			humanize.Comma(int64(len(report.Entries))),
			counts[models.StatusBothSame],
			counts[models.StatusBothDiffer],
			counts[models.StatusOnlyLeft],
			counts[models.StatusOnlyRight],
		)
	}

	if compareFlags.Export != "" {
		if err := compare.ExportSummary(report, compareFlags.Export); err != nil {
			return fmt.Errorf("failed to export summary: %w", err)
		}
		if !quiet(cfg) {
			fmt.Fprintf(os.Stdout, "Summary exported to %s\n", compareFlags.Export)
		}
	}

	return nil
}
