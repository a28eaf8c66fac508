package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransport/builder"
)

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random problem as YAML",
		Args:  cobra.NoArgs,
		RunE:  newGenerateAction(input),
	}
	cmd.Flags().IntVarP(&input.rows, "supplies", "m", 3, "number of supply nodes")
	cmd.Flags().IntVarP(&input.cols, "demands", "n", 3, "number of demand nodes")
	cmd.Flags().Int64Var(&input.seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&input.balanced, "balanced", false, "make total supply equal total demand")

	return cmd
}

func newGenerateAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		opts := []builder.BuilderOption{builder.WithSeed(input.seed)}
		if input.balanced {
			opts = append(opts, builder.WithBalanced())
		}
		p, err := builder.RandomProblem(input.rows, input.cols, opts...)
		if err != nil {
			return err
		}
		input.logger.WithField("seed", input.seed).Debugf("generated %dx%d problem", input.rows, input.cols)

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err = enc.Encode(newProblemFile(p)); err != nil {
			return errors.Wrap(err, "unable to encode problem")
		}
		return enc.Close()
	}
}
