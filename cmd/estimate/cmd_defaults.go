package main

import (
	"github.com/spf13/cobra"

	"blended-fee-engine/internal/engine"
	"blended-fee-engine/internal/inputs"
)

func newDefaultsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default snapshot and its metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSituation(cmd.OutOrStdout(), opts.output, engine.Evaluate(inputs.Defaults(), opts.formatter))
		},
	}
}
