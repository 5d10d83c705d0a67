// Command heatmap builds an intensity grid from stored track points or a
// CSV file and writes it as PNG, HTML or JSON.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heatmap",
		Short:         "Build normalized heatmap grids from point coordinates",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newBuildCmd())
	return root
}
