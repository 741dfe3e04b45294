package main

import (
	"fmt"
	"math/rand"

	"github.com/pcbaker4669/PerceptualDrift/internal/logging"
	"github.com/pcbaker4669/PerceptualDrift/internal/propagation"
	"github.com/pcbaker4669/PerceptualDrift/internal/report"
	"github.com/pcbaker4669/PerceptualDrift/internal/sweep"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Propagate a single message through one chain graph",
		Long: `Build one randomly parameterized chain graph and propagate a message
from node 0 to the last node, printing the per-hop report and the final
message ideology.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, _ := cmd.Flags().GetInt("nodes")
			sensitivity, _ := cmd.Flags().GetFloat64("sensitivity")
			seed, _ := cmd.Flags().GetInt64("seed")
			biasMin, _ := cmd.Flags().GetFloat64("bias-min")
			biasMax, _ := cmd.Flags().GetFloat64("bias-max")
			level, _ := cmd.Flags().GetString("log-level")

			logger := logging.NewLogger(level, cmd.ErrOrStderr())

			rng := rand.New(rand.NewSource(seed))
			g, err := sweep.BuildChainGraph(nodes, biasMin, biasMax, rng)
			if err != nil {
				return err
			}

			engine := propagation.NewEngine(g)
			trace, err := engine.Propagate(0, nodes-1, sensitivity)
			if err != nil {
				return fmt.Errorf("propagate: %w", err)
			}

			w := report.NewWriter(cmd.OutOrStdout())
			if err := w.WriteRun(0, trace.Results); err != nil {
				return err
			}
			if err := w.Flush(); err != nil {
				return err
			}

			logger.Info("run complete",
				"nodes", nodes,
				"sensitivity", sensitivity,
				"initial", trace.InitialIdeology,
				"final", trace.FinalIdeology,
				"state", trace.State)

			fmt.Fprintf(cmd.OutOrStdout(), "final message ideology: %.5f (%s)\n",
				trace.FinalIdeology, trace.State)
			if !trace.Success() {
				fmt.Fprintln(cmd.OutOrStdout(), "message saturated: transmission failed")
			}
			return nil
		},
	}

	cmd.Flags().Int("nodes", 5, "Number of nodes in the chain")
	cmd.Flags().Float64("sensitivity", 1.0, "Global drift sensitivity (> 0)")
	cmd.Flags().Int64("seed", 1, "Random seed for ideology and bias generation")
	cmd.Flags().Float64("bias-min", 0.5, "Lower bound of the node bias range")
	cmd.Flags().Float64("bias-max", 3.0, "Upper bound of the node bias range")

	return cmd
}
