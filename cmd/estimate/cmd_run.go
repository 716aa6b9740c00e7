package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blended-fee-engine/internal/engine"
	"blended-fee-engine/internal/model"
	"blended-fee-engine/internal/scenario"
)

func newRunCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml|request.json>",
		Short: "Replay a scenario file through the engine",
		Long: `Run loads initial inputs and an ordered list of mutations from a YAML
scenario (or a JSON calculation request), applies them and prints the end
situation together with any warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			opts.log.Debug("scenario loaded", map[string]interface{}{
				"path":      args[0],
				"scenario":  req.ScenarioID,
				"mutations": len(req.CalculationInstructions.Mutations),
			})

			resp := engine.Process(req, opts.formatter)
			if err := writeResponse(cmd.OutOrStdout(), opts.output, resp); err != nil {
				return err
			}

			if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
				return &CalculationFailedError{
					Message: fmt.Sprintf("calculation %s failed", resp.CalculationMetadata.CalculationID),
				}
			}
			return nil
		},
	}
}
