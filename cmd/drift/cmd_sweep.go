package main

import (
	"fmt"
	"os"

	"github.com/pcbaker4669/PerceptualDrift/internal/config"
	"github.com/pcbaker4669/PerceptualDrift/internal/logging"
	"github.com/pcbaker4669/PerceptualDrift/internal/report"
	"github.com/pcbaker4669/PerceptualDrift/internal/sweep"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the full parameter sweep and emit the CSV report",
		Long: `Run every chain-length x sensitivity combination from the configuration,
building a fresh chain graph per run, and write the per-hop CSV report.

Without --config the default grid is used: chains of 3, 5, 7, and 10 nodes
crossed with sensitivities 0.5, 1.0, 1.5, and 2.0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			level, _ := cmd.Flags().GetString("log-level")

			cfg := config.Load()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetInt64("seed")
				cfg.Sweep.Seed = seed
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = level
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			driver := sweep.NewDriver(cfg.Sweep, logger)
			outcomes, err := driver.Run(report.NewWriter(out))
			if err != nil {
				return err
			}

			saturated := 0
			for _, o := range outcomes {
				if !o.Trace.Success() {
					saturated++
				}
			}
			logger.Info("sweep complete",
				"runs", len(outcomes),
				"saturated", saturated,
				"seed", cfg.Sweep.Seed)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML sweep configuration file")
	cmd.Flags().StringP("output", "o", "", "Write the CSV report to a file instead of stdout")
	cmd.Flags().Int64("seed", 1, "Random seed override")

	return cmd
}
