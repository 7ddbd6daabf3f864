package probe

import (
	"context"
	"os/exec"
	"time"

	"github.com/LachsProducktions/mediascan/pkg/logging"
)

// DefaultTimeout bounds a single external probe invocation
const DefaultTimeout = 15 * time.Second

// Strategy extracts a media duration from a file. Implementations must
// swallow their own failures and report them as a false second return.
type Strategy interface {
	// Name returns the strategy name for logging
	Name() string

	// TryExtract returns the duration in seconds, or false when the
	// strategy cannot determine one
	TryExtract(ctx context.Context, path string) (float64, bool)
}

// Options configures a Prober
type Options struct {
	// FFprobeBinary is the probing executable name or path ("ffprobe"
	// when empty)
	FFprobeBinary string

	// Timeout bounds a single subprocess invocation (DefaultTimeout when
	// zero)
	Timeout time.Duration

	// Logger receives per-strategy debug output; nil disables it
	Logger logging.Logger
}

// Prober runs an ordered chain of duration strategies and returns the
// first success. A strategy being unavailable is equivalent to it
// failing; the prober never returns an error to its caller.
type Prober struct {
	strategies []Strategy
	logger     logging.Logger
}

// New builds a prober, detecting which strategies are available. A
// missing ffprobe binary shortens the chain rather than erroring.
func New(opts Options) *Prober {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	binary := opts.FFprobeBinary
	if binary == "" {
		binary = "ffprobe"
	}

	var strategies []Strategy
	if resolved, err := exec.LookPath(binary); err == nil {
		strategies = append(strategies, &ffprobeStrategy{binary: resolved, timeout: timeout})
	}
	strategies = append(strategies, &containerStrategy{}, &audioStrategy{})

	return &Prober{strategies: strategies, logger: logger}
}

// NewWithStrategies builds a prober over an explicit chain
func NewWithStrategies(logger logging.Logger, strategies ...Strategy) *Prober {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Prober{strategies: strategies, logger: logger}
}

// Duration returns the media duration of the file in seconds, trying each
// strategy in order, or false when every strategy fails.
func (p *Prober) Duration(ctx context.Context, path string) (float64, bool) {
	for _, s := range p.strategies {
		if d, ok := s.TryExtract(ctx, path); ok && d > 0 {
			return d, true
		}
		p.logger.Debug(ctx, "duration strategy yielded nothing", logging.Fields{
			"strategy": s.Name(),
			"path":     path,
		})
	}
	return 0, false
}

// Strategies returns the names of the active strategies in order
func (p *Prober) Strategies() []string {
	names := make([]string, 0, len(p.strategies))
	for _, s := range p.strategies {
		names = append(names, s.Name())
	}
	return names
}
