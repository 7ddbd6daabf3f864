package scanner

import (
	"math"
	"sort"
	"strings"

	"github.com/LachsProducktions/mediascan/pkg/models"
)

// SortBy selects the primary sort key
type SortBy string

const (
	SortByName     SortBy = "name"
	SortBySize     SortBy = "size"
	SortByDuration SortBy = "duration"
	SortByExt      SortBy = "ext"
)

// ValidSortBy reports whether s names a known sort key
func ValidSortBy(s string) bool {
	switch SortBy(s) {
	case SortByName, SortBySize, SortByDuration, SortByExt:
		return true
	}
	return false
}

// Sort returns a new ordering of items by the requested key. Every key
// breaks ties on the lower-cased name; items with no duration sort last.
// An unknown key sorts by name.
func Sort(items []models.ItemRecord, by SortBy) []models.ItemRecord {
	out := make([]models.ItemRecord, len(items))
	copy(out, items)

	name := func(it models.ItemRecord) string { return strings.ToLower(it.Name) }
	size := func(it models.ItemRecord) int64 {
		if it.Size != nil {
			return *it.Size
		}
		return -1
	}
	duration := func(it models.ItemRecord) float64 {
		if it.Duration != nil {
			return *it.Duration
		}
		return math.Inf(1)
	}

	switch by {
	case SortBySize:
		sort.Slice(out, func(i, j int) bool {
			if size(out[i]) != size(out[j]) {
				return size(out[i]) < size(out[j])
			}
			return name(out[i]) < name(out[j])
		})
	case SortByDuration:
		sort.Slice(out, func(i, j int) bool {
			if duration(out[i]) != duration(out[j]) {
				return duration(out[i]) < duration(out[j])
			}
			return name(out[i]) < name(out[j])
		})
	case SortByExt:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Ext != out[j].Ext {
				return out[i].Ext < out[j].Ext
			}
			return name(out[i]) < name(out[j])
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			return name(out[i]) < name(out[j])
		})
	}

	return out
}
