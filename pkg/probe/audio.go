package probe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mewkiz/flac"
	"github.com/tcolgate/mp3"
)

// audioStrategy decodes audio stream metadata to obtain the stream
// length. It understands MP3 frames and FLAC stream info.
type audioStrategy struct{}

// Name returns the strategy name
func (s *audioStrategy) Name() string {
	return "audio"
}

// TryExtract dispatches on extension to the matching decoder
func (s *audioStrategy) TryExtract(ctx context.Context, path string) (float64, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3Duration(path)
	case ".flac":
		return flacDuration(path)
	}
	return 0, false
}

// mp3Duration sums frame durations across the whole stream
func mp3Duration(path string) (float64, bool) {
	file, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer file.Close()

	decoder := mp3.NewDecoder(file)
	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
	)
	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			break
		}
		total += frame.Duration()
	}

	if total <= 0 {
		return 0, false
	}
	return total.Seconds(), true
}

// flacDuration derives the length from the stream info block
func flacDuration(path string) (float64, bool) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return 0, false
	}
	defer stream.Close()

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NSamples == 0 {
		return 0, false
	}
	return float64(info.NSamples) / float64(info.SampleRate), true
}
