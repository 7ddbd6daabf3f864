package compare

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/scanner"
)

var (
	// punctuation and bracket artifacts become spaces so that quality
	// tokens embedded in dotted names stand alone
	punctPattern = regexp.MustCompile(`[.,_\-\[\](){}+'!~#&%@=]+`)

	// resolution-quality tokens stripped from names before matching
	resolutionPattern = regexp.MustCompile(`\b(480p|576p|720p|1080p|1440p|2160p|4320p|4k|8k|uhd|fhd|qhd|hd|sd)\b`)

	spacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeKey reduces a display name to its comparison key: lower-cased,
// punctuation replaced by spaces, resolution-quality tokens stripped,
// whitespace collapsed. Two items with different literal names but the
// same key are treated as the same logical file.
func NormalizeKey(name string) string {
	key := strings.ToLower(name)
	key = punctPattern.ReplaceAllString(key, " ")
	key = resolutionPattern.ReplaceAllString(key, " ")
	key = spacePattern.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// normalizeRecord maps a raw snapshot record of either field-name casing
// onto the canonical item shape. Missing categories default to Other;
// the size display falls back to the stringified numeric size.
func normalizeRecord(raw models.RawRecord) models.ItemRecord {
	name := stringField(raw, "name", "Name")
	path := stringField(raw, "path", "Path")
	if path == "" {
		path = name
	}

	item := models.ItemRecord{Name: name, Path: path}

	if v, ok := field(raw, "size", "Size"); ok {
		if n, ok := toInt64(v); ok {
			item.Size = &n
		}
	}

	item.SizeDisplay = stringField(raw, "size_display", "Size_Display")
	if item.SizeDisplay == "" && item.Size != nil {
		item.SizeDisplay = strconv.FormatInt(*item.Size, 10)
	}

	item.Ext = strings.ToLower(stringField(raw, "ext", "Ext"))
	if item.Ext == "" {
		item.Ext = scanner.Ext(name)
	}

	category := stringField(raw, "category", "Category")
	if category == "" {
		category = string(models.CategoryOther)
	}
	item.Category = models.Category(category)

	if v, ok := field(raw, "duration", "Duration"); ok {
		if d, ok := toFloat64(v); ok {
			item.Duration = &d
		}
	}

	item.DurationDisplay = stringField(raw, "duration_display", "Duration_Display")
	if item.DurationDisplay == "" {
		item.DurationDisplay = "N/A"
	}

	item.Hash = stringField(raw, "sha256", "hash", "Hash")

	return item
}

func normalizeAll(raws []models.RawRecord) []models.ItemRecord {
	items := make([]models.ItemRecord, 0, len(raws))
	for _, raw := range raws {
		items = append(items, normalizeRecord(raw))
	}
	return items
}

func field(raw models.RawRecord, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw models.RawRecord, keys ...string) string {
	v, ok := field(raw, keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
