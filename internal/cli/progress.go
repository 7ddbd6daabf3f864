package cli

import (
	"os"

	"github.com/cheggaaa/pb/v3"
)

// progressBar adapts the core progress callback to a terminal bar
type progressBar struct {
	bar *pb.ProgressBar
}

// newProgressBar starts a 0-100 percent bar on stderr, or returns a
// disabled bar when output is suppressed.
func newProgressBar(enabled bool) *progressBar {
	if !enabled {
		return &progressBar{}
	}
	bar := pb.New(100)
	bar.SetWriter(os.Stderr)
	bar.Start()
	return &progressBar{bar: bar}
}

// update is the callback handed to the scanner or comparer. It must
// return quickly; pb renders asynchronously.
func (p *progressBar) update(percent int, currentPath string) {
	if p.bar != nil {
		p.bar.SetCurrent(int64(percent))
	}
}

// finish completes and clears the bar
func (p *progressBar) finish() {
	if p.bar != nil {
		p.bar.SetCurrent(100)
		p.bar.Finish()
	}
}
