package main

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/pcbaker4669/PerceptualDrift/internal/propagation"
	"github.com/pcbaker4669/PerceptualDrift/internal/sweep"
	"github.com/pcbaker4669/PerceptualDrift/internal/visualization"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Visualize a propagated chain graph",
		Long: `Build one chain graph, propagate a message across it, and output the
graph in DOT (Graphviz) or JSON format with per-edge carried message values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, _ := cmd.Flags().GetInt("nodes")
			sensitivity, _ := cmd.Flags().GetFloat64("sensitivity")
			seed, _ := cmd.Flags().GetInt64("seed")
			biasMin, _ := cmd.Flags().GetFloat64("bias-min")
			biasMax, _ := cmd.Flags().GetFloat64("bias-max")
			format, _ := cmd.Flags().GetString("format")

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

			switch visualization.Format(format) {
			case visualization.FormatDOT:
				fmt.Fprint(cmd.OutOrStdout(), visualization.RenderDOT(g, trace))

			case visualization.FormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(visualization.RenderJSON(g, trace)); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}

			default:
				return fmt.Errorf("unsupported format %q (use 'dot' or 'json')", format)
			}

			return nil
		},
	}

	cmd.Flags().Int("nodes", 5, "Number of nodes in the chain")
	cmd.Flags().Float64("sensitivity", 1.0, "Global drift sensitivity (> 0)")
	cmd.Flags().Int64("seed", 1, "Random seed for ideology and bias generation")
	cmd.Flags().Float64("bias-min", 0.5, "Lower bound of the node bias range")
	cmd.Flags().Float64("bias-max", 3.0, "Upper bound of the node bias range")
	cmd.Flags().String("format", "dot", "Output format: dot or json")

	return cmd
}
