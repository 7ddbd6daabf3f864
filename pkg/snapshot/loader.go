package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/LachsProducktions/mediascan/pkg/logging"
	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/scanner"
)

// Load parses a previously saved inventory into raw item records. Field
// normalization is deferred to the comparator. Load never fails: an
// unreadable or malformed snapshot is logged and yields an empty list.
func Load(path string, logger logging.Logger) []models.RawRecord {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	ctx := context.Background()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn(ctx, "snapshot unreadable", logging.Fields{
			"path":  path,
			"error": err.Error(),
		})
		return []models.RawRecord{}
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return []models.RawRecord{}
	}

	// Content that parses as a record list is taken verbatim; everything
	// else, including JSON that is not a list, is treated as the legacy
	// tab-delimited format.
	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err == nil && records != nil {
		return records
	}

	return parseDelimited(trimmed)
}

// parseDelimited parses the legacy tab-separated snapshot form: one
// record per line, optional header, minimum two columns (name, path)
// with size display optional.
func parseDelimited(content string) []models.RawRecord {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) > 0 && looksLikeHeader(lines[0]) {
		lines = lines[1:]
	}

	records := make([]models.RawRecord, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "\t")

		name, path, sizeDisplay := parts[0], parts[0], "N/A"
		if len(parts) >= 2 {
			path = parts[1]
		}
		if len(parts) >= 3 && parts[2] != "" {
			sizeDisplay = parts[2]
		}

		records = append(records, models.RawRecord{
			"name":         name,
			"path":         path,
			"size_display": sizeDisplay,
			"ext":          scanner.Ext(name),
			"category":     string(models.CategoryOther),
		})
	}

	return records
}

// looksLikeHeader reports whether the first two columns read like "name"
// and "path" (case-insensitive substring match).
func looksLikeHeader(line string) bool {
	parts := strings.Split(line, "\t")
	if len(parts) < 2 {
		return false
	}
	return strings.Contains(strings.ToLower(parts[0]), "name") &&
		strings.Contains(strings.ToLower(parts[1]), "path")
}
