package models

// Category classifies a file by media type. It is derived purely from the
// file extension; content and name never influence it.
type Category string

const (
	CategoryVideos Category = "Videos"
	CategoryMusic  Category = "Music"
	CategoryPhotos Category = "Photos"
	CategoryOther  Category = "Other"
)

// ItemRecord is the canonical description of one scanned or loaded file.
// Records are immutable once produced: the scanner never revisits a file
// after emitting its record.
type ItemRecord struct {
	// Name is the base file name, non-empty
	Name string `json:"name"`

	// Path is the full path as seen at scan time; not guaranteed unique
	Path string `json:"path"`

	// Size in bytes; nil when unknown (e.g. legacy snapshots without a
	// numeric size)
	Size *int64 `json:"size,omitempty"`

	// SizeDisplay is the human-readable size ("12.3 MiB"); authoritative
	// for display only when a numeric size exists
	SizeDisplay string `json:"size_display"`

	// Ext is the lower-cased extension including the leading dot, "" if none
	Ext string `json:"ext"`

	// Category is derived from Ext via the fixed classification table
	Category Category `json:"category"`

	// Duration in seconds; only attempted for Videos/Music, nil when
	// extraction failed or yielded nothing
	Duration *float64 `json:"duration,omitempty"`

	// DurationDisplay is "N/A" when no duration is available, "Error" when
	// probing failed hard, otherwise "M:SS" or "H:MM:SS"
	DurationDisplay string `json:"duration_display"`

	// Hash is the hex SHA-256 digest, present only when hashing was requested
	Hash string `json:"sha256,omitempty"`
}

// RawRecord is an item as it appears in a snapshot before normalization.
// Field names may be the canonical lower-case set or a legacy title-case
// set; the comparator maps either onto ItemRecord.
type RawRecord map[string]any
