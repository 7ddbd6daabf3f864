package compare

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/LachsProducktions/mediascan/pkg/logging"
	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/ratelimit"
	"github.com/LachsProducktions/mediascan/pkg/scanner"
	"github.com/LachsProducktions/mediascan/pkg/snapshot"
)

// ProgressFunc receives comparison progress. percent is 0-100 across the
// whole operation; current describes the file or phase being worked on.
type ProgressFunc func(percent int, current string)

// Options configures a comparison involving live scanning
type Options struct {
	// IncludeHash enables content hashing during the scan phases
	IncludeHash bool

	// Progress is invoked synchronously as the operation advances
	Progress ProgressFunc

	// Limiter optionally bounds hashing I/O
	Limiter *ratelimit.Limiter
}

// Report is the outcome of one comparison run
type Report struct {
	// ID identifies this run in logs and exports
	ID string

	// Left and Right describe the two sources (folder or snapshot paths)
	Left  string
	Right string

	// LeftItems and RightItems are the normalized inputs
	LeftItems  []models.ItemRecord
	RightItems []models.ItemRecord

	// Entries is the merged result, ordered ascending by key
	Entries []models.CompareEntry
}

// Comparer builds comparison reports from folders and snapshots
type Comparer struct {
	scanner *scanner.Scanner
	logger  logging.Logger
}

// New creates a comparer. The scanner may be nil when only snapshot
// comparisons are performed.
func New(s *scanner.Scanner, logger logging.Logger) *Comparer {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Comparer{scanner: s, logger: logger}
}

// Folders scans both roots fresh and compares the results. The left scan
// maps onto progress 0-50, the right onto 50-100.
func (c *Comparer) Folders(ctx context.Context, left, right string, opts Options) (*Report, error) {
	emit := opts.Progress

	if emit != nil {
		emit(0, fmt.Sprintf("Scanning folder: %s", left))
	}
	leftItems, err := c.scanner.Scan(ctx, left, scanner.Options{
		IncludeHash: opts.IncludeHash,
		Limiter:     opts.Limiter,
		Progress:    scaled(emit, 0, 50),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", left, err)
	}

	if emit != nil {
		emit(50, fmt.Sprintf("Scanning folder: %s", right))
	}
	rightItems, err := c.scanner.Scan(ctx, right, scanner.Options{
		IncludeHash: opts.IncludeHash,
		Limiter:     opts.Limiter,
		Progress:    scaled(emit, 50, 50),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", right, err)
	}

	if emit != nil {
		emit(100, "Comparing results...")
	}

	return c.build(ctx, left, right, leftItems, rightItems), nil
}

// SnapshotVsFolder loads the left side from a saved snapshot and scans
// the right side fresh. The scan maps onto progress 20-100.
func (c *Comparer) SnapshotVsFolder(ctx context.Context, snapshotPath, folder string, opts Options) (*Report, error) {
	emit := opts.Progress

	if emit != nil {
		emit(0, fmt.Sprintf("Loading snapshot: %s", snapshotPath))
	}
	leftItems := normalizeAll(snapshot.Load(snapshotPath, c.logger))

	if emit != nil {
		emit(20, fmt.Sprintf("Scanning folder: %s", folder))
	}
	rightItems, err := c.scanner.Scan(ctx, folder, scanner.Options{
		IncludeHash: opts.IncludeHash,
		Limiter:     opts.Limiter,
		Progress:    scaled(emit, 20, 80),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", folder, err)
	}

	if emit != nil {
		emit(100, "Comparing results...")
	}

	return c.build(ctx, snapshotPath, folder, leftItems, rightItems), nil
}

// Snapshots compares two saved snapshots without scanning. Loader
// failures degrade to empty sides rather than errors.
func (c *Comparer) Snapshots(snapshotA, snapshotB string) *Report {
	leftItems := normalizeAll(snapshot.Load(snapshotA, c.logger))
	rightItems := normalizeAll(snapshot.Load(snapshotB, c.logger))
	return c.build(context.Background(), snapshotA, snapshotB, leftItems, rightItems)
}

func (c *Comparer) build(ctx context.Context, left, right string, leftItems, rightItems []models.ItemRecord) *Report {
	report := &Report{
		ID:         uuid.New().String(),
		Left:       left,
		Right:      right,
		LeftItems:  leftItems,
		RightItems: rightItems,
		Entries:    classify(leftItems, rightItems),
	}

	c.logger.Info(ctx, "comparison complete", logging.Fields{
		"run_id":  report.ID,
		"left":    left,
		"right":   right,
		"entries": len(report.Entries),
	})

	return report
}

// indexByKey maps each side's items by normalized key. Within-side
// duplicates never affect matching: the first item per key is the
// representative, the rest are discarded.
func indexByKey(items []models.ItemRecord) map[string]models.ItemRecord {
	index := make(map[string]models.ItemRecord, len(items))
	for _, item := range items {
		key := NormalizeKey(item.Name)
		if _, seen := index[key]; !seen {
			index[key] = item
		}
	}
	return index
}

// classify resolves every key present on either side into one result
// entry, in ascending key order.
func classify(leftItems, rightItems []models.ItemRecord) []models.CompareEntry {
	leftIndex := indexByKey(leftItems)
	rightIndex := indexByKey(rightItems)

	keys := make([]string, 0, len(leftIndex)+len(rightIndex))
	for key := range leftIndex {
		keys = append(keys, key)
	}
	for key := range rightIndex {
		if _, ok := leftIndex[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	entries := make([]models.CompareEntry, 0, len(keys))
	for _, key := range keys {
		left, inLeft := leftIndex[key]
		right, inRight := rightIndex[key]

		switch {
		case inLeft && inRight:
			category := left.Category
			if category == "" {
				category = right.Category
			}
			entries = append(entries, models.CompareEntry{
				Key:          key,
				Category:     category,
				Status:       matchStatus(left, right),
				LeftDisplay:  left.SizeDisplay,
				RightDisplay: right.SizeDisplay,
			})
		case inLeft:
			entries = append(entries, models.CompareEntry{
				Key:         key,
				Category:    left.Category,
				Status:      models.StatusOnlyLeft,
				LeftDisplay: left.SizeDisplay,
			})
		default:
			entries = append(entries, models.CompareEntry{
				Key:          key,
				Category:     right.Category,
				Status:       models.StatusOnlyRight,
				RightDisplay: right.SizeDisplay,
			})
		}
	}

	return entries
}

// matchStatus resolves a key present on both sides through the equality
// cascade: exact numeric sizes, then canonicalized size displays, then
// the items' own normalized-name keys. The final fallback always yields
// both_same since both items matched on the indexing key: a name-only
// match with no size data is reported as identical by policy.
func matchStatus(left, right models.ItemRecord) models.Status {
	if left.Size != nil && right.Size != nil {
		if *left.Size == *right.Size {
			return models.StatusBothSame
		}
		return models.StatusBothDiffer
	}

	leftDisplay := canonSizeDisplay(left.SizeDisplay)
	rightDisplay := canonSizeDisplay(right.SizeDisplay)
	if leftDisplay != "" && rightDisplay != "" {
		if leftDisplay == rightDisplay {
			return models.StatusBothSame
		}
		return models.StatusBothDiffer
	}

	if NormalizeKey(left.Name) == NormalizeKey(right.Name) {
		return models.StatusBothSame
	}
	return models.StatusBothDiffer
}

// canonSizeDisplay lowers the display and strips whitespace and
// thousands-separator commas for comparison.
func canonSizeDisplay(display string) string {
	display = strings.ToLower(display)
	display = strings.ReplaceAll(display, ",", "")
	return strings.Join(strings.Fields(display), "")
}

// scaled maps a 0-100 sub-operation progress onto [offset, offset+span]
func scaled(emit ProgressFunc, offset, span int) scanner.ProgressFunc {
	if emit == nil {
		return nil
	}
	return func(percent int, currentPath string) {
		emit(offset+percent*span/100, currentPath)
	}
}
