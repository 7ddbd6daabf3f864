package config

import (
	"github.com/LachsProducktions/mediascan/pkg/models"
	"github.com/LachsProducktions/mediascan/pkg/scanner"
	"github.com/LachsProducktions/mediascan/pkg/snapshot"
)

// Config represents the application configuration
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Probe   ProbeConfig   `yaml:"probe"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig holds scan-related settings
type ScanConfig struct {
	// IncludeHash enables content hashing by default
	IncludeHash bool `yaml:"include_hash"`
	// SortBy is the default ordering: name, size, duration or ext
	SortBy string `yaml:"sort_by"`
	// HashBandwidthLimit bounds hashing I/O in bytes per second (0 = off)
	HashBandwidthLimit int64 `yaml:"hash_bandwidth_limit"`
}

// ProbeConfig holds duration-probe settings
type ProbeConfig struct {
	// FFprobeBinary is the probing executable name or path
	FFprobeBinary string `yaml:"ffprobe_binary"`
	// TimeoutSeconds bounds a single subprocess invocation
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	// ExportFormat is the default snapshot format: json or txt
	ExportFormat string `yaml:"export_format"`
	// Progress shows a progress bar during scans
	Progress bool `yaml:"progress"`
	// Quiet suppresses non-error output
	Quiet bool `yaml:"quiet"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // log file path (empty = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			IncludeHash:        false,
			SortBy:             string(scanner.SortByName),
			HashBandwidthLimit: 0,
		},
		Probe: ProbeConfig{
			FFprobeBinary:  "ffprobe",
			TimeoutSeconds: 15,
		},
		Output: OutputConfig{
			ExportFormat: string(snapshot.FormatText),
			Progress:     true,
			Quiet:        false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !scanner.ValidSortBy(c.Scan.SortBy) {
		return &models.ValidationError{
			Field:   "scan.sort_by",
			Message: "must be 'name', 'size', 'duration' or 'ext'",
		}
	}

	if c.Scan.HashBandwidthLimit < 0 {
		return &models.ValidationError{
			Field:   "scan.hash_bandwidth_limit",
			Message: "must not be negative",
		}
	}

	if c.Probe.TimeoutSeconds < 1 {
		return &models.ValidationError{
			Field:   "probe.timeout_seconds",
			Message: "must be at least 1",
		}
	}

	if !snapshot.ValidFormat(c.Output.ExportFormat) {
		return &models.ValidationError{
			Field:   "output.export_format",
			Message: "must be 'json' or 'txt'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
