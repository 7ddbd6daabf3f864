package probe

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/alfg/mp4"
)

// mp4FamilyExts are the container extensions the box parser understands
var mp4FamilyExts = map[string]struct{}{
	".mp4": {},
	".m4a": {},
	".m4v": {},
	".mov": {},
	".3gp": {},
	".f4v": {},
}

// containerStrategy parses MP4-family container boxes directly, scanning
// the reported tracks for the first non-zero duration.
type containerStrategy struct{}

// Name returns the strategy name
func (s *containerStrategy) Name() string {
	return "container"
}

// TryExtract reads the movie header and track boxes of the file
func (s *containerStrategy) TryExtract(ctx context.Context, path string) (float64, bool) {
	if _, ok := mp4FamilyExts[strings.ToLower(filepath.Ext(path))]; !ok {
		return 0, false
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, false
	}

	v, err := mp4.OpenFromReader(file, info.Size())
	if err != nil || v.Moov == nil || v.Moov.Mvhd == nil {
		return 0, false
	}

	scale := v.Moov.Mvhd.Timescale
	if scale == 0 {
		return 0, false
	}

	// track durations are expressed in the movie timescale
	for _, trak := range v.Moov.Traks {
		if trak.Tkhd != nil && trak.Tkhd.Duration > 0 {
			return float64(trak.Tkhd.Duration) / float64(scale), true
		}
	}

	if v.Moov.Mvhd.Duration > 0 {
		return float64(v.Moov.Mvhd.Duration) / float64(scale), true
	}
	return 0, false
}
