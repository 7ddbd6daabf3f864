package probe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ffprobeStrategy shells out to ffprobe and parses a single numeric
// duration from its output.
type ffprobeStrategy struct {
	binary  string
	timeout time.Duration
}

// Name returns the strategy name
func (s *ffprobeStrategy) Name() string {
	return "ffprobe"
}

// TryExtract runs ffprobe with a bounded timeout. Any failure, including
// the timeout, yields false.
func (s *ffprobeStrategy) TryExtract(ctx context.Context, path string) (float64, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"--", path)

	output, err := cmd.Output()
	if err != nil {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
