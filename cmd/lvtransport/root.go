package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCommand(input *Input, stdout, stderr io.Writer, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lvtransport",
		Short:        "Solve transportation problems with the method of potentials",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			input.logger = newLogger(stderr, input.verbose)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output (per-pivot trace)")

	rootCmd.AddCommand(newSolveCommand(input), newGenerateCommand(input))

	return rootCmd
}
