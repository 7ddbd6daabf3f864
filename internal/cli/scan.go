package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/scanner"
	"github.com/LachsProducktions/mediascan/pkg/snapshot"
)

// ScanFlags holds scan command flag values
type ScanFlags struct {
	IncludeHash bool
	SortBy      string
	Category    string
	Out         string
	Format      string
}

var scanFlags ScanFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <folder>",
		Short: "Scan a folder and inventory its media files",
		Long: `Recursively scan a folder, classify every file by media type and extract
size and duration metadata. The inventory can be rendered as a table and
saved as a snapshot for later comparison.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().BoolVar(&scanFlags.IncludeHash, "hash", false, "compute a SHA-256 content hash per file")
	cmd.Flags().StringVar(&scanFlags.SortBy, "sort", "", "sort key: name, size, duration, ext")
	cmd.Flags().StringVar(&scanFlags.Category, "category", "", "only show one category: Videos, Music, Photos, Other")
	cmd.Flags().StringVarP(&scanFlags.Out, "out", "o", "", "write the inventory snapshot to this file")
	cmd.Flags().StringVar(&scanFlags.Format, "format", "", "snapshot format: json, txt")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := args[0]

	if err := ensureDir("folder", root); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	includeHash := scanFlags.IncludeHash || cfg.Scan.IncludeHash

	sortBy := cfg.Scan.SortBy
	if scanFlags.SortBy != "" {
		sortBy = scanFlags.SortBy
	}
	if !scanner.ValidSortBy(sortBy) {
		return &models.ValidationError{Field: "sort", Message: "must be 'name', 'size', 'duration' or 'ext'"}
	}

	format := cfg.Output.ExportFormat
	if scanFlags.Format != "" {
		format = scanFlags.Format
	}
	if !snapshot.ValidFormat(format) {
		return &models.ValidationError{Field: "format", Message: "must be 'json' or 'txt'"}
	}

	bar := newProgressBar(cfg.Output.Progress && !quiet(cfg))
	sc := newScanner(cfg, logger)
	items, err := sc.Scan(ctx, root, scanner.Options{
		IncludeHash: includeHash,
		Limiter:     hashLimiter(cfg),
		Progress:    bar.update,
	})
	bar.finish()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	items = scanner.Sort(items, scanner.SortBy(sortBy))

	shown := items
	if scanFlags.Category != "" {
		shown = filterCategory(items, models.Category(scanFlags.Category))
	}

	if !quiet(cfg) {
		fmt.Fprintln(os.Stdout, renderItems(shown))
		fmt.Fprintf(os.Stdout, "\n%s files scanned (%s shown)\n",
			humanize.Comma(int64(len(items))), humanize.Comma(int64(len(shown))))
	}

	if scanFlags.Out != "" {
		if err := snapshot.Save(items, scanFlags.Out, snapshot.Format(format)); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		if !quiet(cfg) {
			fmt.Fprintf(os.Stdout, "Snapshot saved to %s\n", scanFlags.Out)
		}
	}

	return nil
}

func filterCategory(items []models.ItemRecord, category models.Category) []models.ItemRecord {
	filtered := make([]models.ItemRecord, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
