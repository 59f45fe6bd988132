package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Input holds the values of the persistent flags.
type Input struct {
	verbose bool
}

func newRootCommand(version string) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:          "mstctl",
		Short:        "Compute minimum spanning trees with Borůvka contraction",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newSolveCommand(), newGenerateCommand())

	return rootCmd
}
