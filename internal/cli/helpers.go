package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/LachsProducktions/mediascan/internal/platform"
	"github.com/LachsProducktions/mediascan/pkg/compare"
	"github.com/LachsProducktions/mediascan/pkg/config"
	"github.com/LachsProducktions/mediascan/pkg/logging"
	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/probe"
	"github.com/LachsProducktions/mediascan/pkg/ratelimit"
	"github.com/LachsProducktions/mediascan/pkg/scanner"
)

// loadConfig loads the configuration, honoring the --config flag
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newLogger builds a logger from the logging configuration. The --verbose
// flag lowers the level to debug.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	format := logging.Format(cfg.Logging.Format)
	if cfg.Logging.File == "" {
		return logging.NewWriterLogger(os.Stderr, format, level), nil
	}
	return logging.NewFileLogger(cfg.Logging.File, format, level)
}

// newScanner wires the probe chain and scanner from configuration
func newScanner(cfg *config.Config, logger logging.Logger) *scanner.Scanner {
	prober := probe.New(probe.Options{
		FFprobeBinary: cfg.Probe.FFprobeBinary,
		Timeout:       time.Duration(cfg.Probe.TimeoutSeconds) * time.Second,
		Logger:        logger,
	})
	return scanner.New(prober, logger)
}

// newComparer wires a comparer over a configured scanner
func newComparer(cfg *config.Config, logger logging.Logger) *compare.Comparer {
	return compare.New(newScanner(cfg, logger), logger)
}

// hashLimiter builds the optional hashing rate limiter
func hashLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.NewLimiter(cfg.Scan.HashBandwidthLimit)
}

// ensureDir validates that path names an existing directory
func ensureDir(field, path string) error {
	info, err := os.Stat(platform.NormalizePath(path))
	if err != nil {
		return &models.ValidationError{Field: field, Message: fmt.Sprintf("cannot access %s: %v", path, err)}
	}
	if !info.IsDir() {
		return &models.ValidationError{Field: field, Message: fmt.Sprintf("%s is not a directory", path)}
	}
	return nil
}

// ensureFile validates that path names an existing regular file
func ensureFile(field, path string) error {
	info, err := os.Stat(platform.NormalizePath(path))
	if err != nil {
		return &models.ValidationError{Field: field, Message: fmt.Sprintf("cannot access %s: %v", path, err)}
	}
	if info.IsDir() {
		return &models.ValidationError{Field: field, Message: fmt.Sprintf("%s is a directory", path)}
	}
	return nil
}

// quiet reports whether non-error output is suppressed
func quiet(cfg *config.Config) bool {
	return globalFlags.Quiet || cfg.Output.Quiet
}
