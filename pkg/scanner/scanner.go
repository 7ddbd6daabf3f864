package scanner

import (
	"context"
	"fmt"

	"github.com/LachsProducktions/mediascan/pkg/logging"
	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/probe"
	"github.com/LachsProducktions/mediascan/pkg/ratelimit"
	"github.com/LachsProducktions/mediascan/pkg/storage"
)

// ProgressFunc receives scan progress after each processed file. percent
// is 0-100; the callback is invoked synchronously and must return
// quickly.
type ProgressFunc func(percent int, currentPath string)

// Options configures a single scan
type Options struct {
	// IncludeHash enables streaming SHA-256 hashing of every file
	IncludeHash bool

	// Progress is invoked once per enumerated file, success or failure
	Progress ProgressFunc

	// Limiter optionally bounds hashing I/O; nil means unlimited
	Limiter *ratelimit.Limiter
}

// Scanner walks directory trees and produces item records. It holds no
// mutable state between calls; scans of different roots may run in
// separate goroutines.
type Scanner struct {
	prober *probe.Prober
	logger logging.Logger
}

// New creates a scanner. A nil prober disables duration extraction; a nil
// logger discards log output.
func New(prober *probe.Prober, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{prober: prober, logger: logger}
}

// Scan recursively enumerates every regular file under root and returns
// one record per file in enumeration order. A single file's failure is
// logged and the file skipped; the scan itself only fails when the root
// cannot be accessed.
func (s *Scanner) Scan(ctx context.Context, root string, opts Options) ([]models.ItemRecord, error) {
	backend, err := storage.NewLocal(root)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	files, err := backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", root, err)
	}

	total := len(files)
	if total == 0 {
		return []models.ItemRecord{}, nil
	}

	items := make([]models.ItemRecord, 0, total)
	for count, file := range files {
		item, err := s.scanFile(ctx, backend, file, opts)
		if err != nil {
			s.logger.Warn(ctx, "skipping file", logging.Fields{
				"path":  file.Path,
				"error": err.Error(),
			})
		} else {
			items = append(items, item)
		}

		if opts.Progress != nil {
			opts.Progress((count+1)*100/total, file.Path)
		}
	}

	return items, nil
}

func (s *Scanner) scanFile(ctx context.Context, backend storage.Backend, file storage.FileInfo, opts Options) (models.ItemRecord, error) {
	info, err := backend.Stat(ctx, file.Path)
	if err != nil {
		return models.ItemRecord{}, err
	}

	ext := Ext(file.Name)
	size := info.Size
	category := Categorize(ext)

	item := models.ItemRecord{
		Name:            file.Name,
		Path:            file.Path,
		Size:            &size,
		SizeDisplay:     FormatSize(size),
		Ext:             ext,
		Category:        category,
		DurationDisplay: "N/A",
	}

	if category == models.CategoryVideos || category == models.CategoryMusic {
		item.Duration, item.DurationDisplay = s.probeDuration(ctx, file.Path)
	}

	if opts.IncludeHash {
		sum, err := hashFile(ctx, backend, file.Path, opts.Limiter)
		if err != nil {
			return models.ItemRecord{}, fmt.Errorf("failed to hash file: %w", err)
		}
		item.Hash = sum
	}

	return item, nil
}

// probeDuration runs the probe chain. An exhausted chain yields "N/A"; a
// panic inside a strategy yields the distinct "Error" marker instead of
// failing the scan.
func (s *Scanner) probeDuration(ctx context.Context, path string) (duration *float64, display string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn(ctx, "duration probe panicked", logging.Fields{
				"path":  path,
				"panic": fmt.Sprint(r),
			})
			duration, display = nil, "Error"
		}
	}()

	if s.prober == nil {
		return nil, "N/A"
	}

	d, ok := s.prober.Duration(ctx, path)
	if !ok {
		return nil, "N/A"
	}
	return &d, FormatDuration(&d)
}
