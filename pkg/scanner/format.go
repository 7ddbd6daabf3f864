package scanner

import (
	"fmt"
	"math"
)

// FormatSize renders a byte count using binary-unit scaling (1024 base)
// with one decimal place, falling back to PiB beyond TiB.
func FormatSize(n int64) string {
	v := float64(n)
	for _, unit := range []string{"B", "KiB", "MiB", "GiB", "TiB"} {
		if math.Abs(v) < 1024.0 {
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= 1024.0
	}
	return fmt.Sprintf("%.1f PiB", v)
}

// FormatDuration renders seconds as "M:SS" or "H:MM:SS" with zero-padded
// seconds and minutes and unpadded hours. A nil or non-positive duration
// renders as "N/A".
func FormatDuration(seconds *float64) string {
	if seconds == nil || *seconds <= 0 {
		return "N/A"
	}

	total := int(*seconds)
	minutes, sec := total/60, total%60
	hours := minutes / 60
	minutes = minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, sec)
	}
	return fmt.Sprintf("%02d:%02d", minutes, sec)
}
