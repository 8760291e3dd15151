// Command flock runs the steering swarm in a terminal, exports frames as SVG
// and lists the configured scenes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flock",
		Short: "Scroll-choreographed steering swarm",
		Long: `flock animates one agent per entity along orbit rings. Scene
transitions move agents between rings and highlight individual agents.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("scenes", "", "Scene YAML file (default: embedded)")
	rootCmd.PersistentFlags().String("entities", "", "Entity JSON file (default: embedded sample)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Spawn seed (default: fixed)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug log to logs/")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newExportCmd(),
		newScenesCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flock version %s\n", version)
		},
	}
}
