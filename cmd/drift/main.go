// Command drift simulates the propagation of an ideology-bearing message
// along directed chains of biased nodes and reports the accumulated drift.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "drift",
		Short: "Perceptual drift - ideology propagation simulator",
		Long: `drift simulates how an ideology-bearing message distorts as it passes
through a chain of biased nodes.

Each node pulls the message toward its own ideology with a drift that grows
quadratically with the ideological gap, so distant stances dominate the
dynamics. The simulator reports per-hop fidelity and plausibility drift and
detects saturation, the point where a message becomes ideologically extreme
enough to be implausible.`,
	}

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newGraphCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "drift version %s\n", version)
		},
	}
}
