package models

// Status classifies a comparison key across two inventories
type Status string

const (
	// StatusOnlyLeft indicates the key is present only on the left side
	StatusOnlyLeft Status = "only_left"
	// StatusOnlyRight indicates the key is present only on the right side
	StatusOnlyRight Status = "only_right"
	// StatusBothSame indicates the key is present on both sides and the
	// items are considered the same
	StatusBothSame Status = "both_same"
	// StatusBothDiffer indicates the key is present on both sides but the
	// items differ
	StatusBothDiffer Status = "both_differ"
)

// CompareEntry is one row of a comparison result: the outcome for a single
// normalized key across both sides.
type CompareEntry struct {
	// Key is the normalized comparison key
	Key string `json:"file"`

	// Category of the representative item (left side preferred)
	Category Category `json:"category"`

	// Status is the classification outcome
	Status Status `json:"status"`

	// LeftDisplay is the left item's size display, empty for only_right
	LeftDisplay string `json:"left_size"`

	// RightDisplay is the right item's size display, empty for only_left
	RightDisplay string `json:"right_size"`
}
