package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LachsProducktions/mediascan/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify mediascan configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Include Hash: %v\n", cfg.Scan.IncludeHash)
			fmt.Printf("Sort By: %s\n", cfg.Scan.SortBy)
			fmt.Printf("Hash Bandwidth Limit: %d\n", cfg.Scan.HashBandwidthLimit)
			fmt.Printf("FFprobe Binary: %s\n", cfg.Probe.FFprobeBinary)
			fmt.Printf("Probe Timeout: %ds\n", cfg.Probe.TimeoutSeconds)
			fmt.Printf("Export Format: %s\n", cfg.Output.ExportFormat)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
