package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/LachsProducktions/mediascan/pkg/models"
)

// Format selects a snapshot serialization
type Format string

const (
	// FormatJSON writes an indented JSON list of records
	FormatJSON Format = "json"
	// FormatText writes the tab-delimited form with a header line
	FormatText Format = "txt"
)

// ValidFormat reports whether s names a known snapshot format
func ValidFormat(s string) bool {
	switch Format(s) {
	case FormatJSON, FormatText:
		return true
	}
	return false
}

// Save writes items to path in the given format
func Save(items []models.ItemRecord, path string, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatText:
		return writeText(items, file)
	default:
		return writeJSON(items, file)
	}
}

func writeJSON(items []models.ItemRecord, file *os.File) error {
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func writeText(items []models.ItemRecord, file *os.File) error {
	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "name\tpath\tsize\tduration\text")
	for _, item := range items {
		fmt.Fprintln(w, strings.Join([]string{
			item.Name,
			item.Path,
			item.SizeDisplay,
			item.DurationDisplay,
			item.Ext,
		}, "\t"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
