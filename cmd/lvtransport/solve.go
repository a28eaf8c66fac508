package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/transport"
)

func newSolveCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem file (or the built-in demo) and print the allocation",
		Args:  cobra.NoArgs,
		RunE:  newSolveAction(input),
	}
	cmd.Flags().StringVarP(&input.problemPath, "file", "f", "", "problem file (.yaml, .yml or .json); demo instance if empty")
	cmd.Flags().VarP(&input.algo, "algo", "a", "initial basis: potentials|lp")
	cmd.Flags().IntVar(&input.maxIter, "max-iter", 0, "pivot cap, 0 for automatic")
	cmd.Flags().BoolVar(&input.check, "check", true, "verify the basis is a spanning tree after every pivot")
	cmd.Flags().StringVarP(&input.output, "output", "o", formatTable, "output format: table|yaml|json")

	return cmd
}

func newSolveAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := loadProblem(input.problemPath)
		if err != nil {
			return err
		}
		input.logger.WithField("file", input.problemPath).Debugf("solving %dx%d problem", len(p.Supply), len(p.Demand))

		res, err := transport.Solve(p, input.options())
		if err != nil {
			input.logger.WithError(err).Error("solve failed")
			return err
		}

		return render(cmd.OutOrStdout(), input.output, res)
	}
}
