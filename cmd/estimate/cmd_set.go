package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/model"
	"blended-fee-engine/internal/session"
)

func newSetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <change>...",
		Short: "Apply input changes to the default snapshot",
		Long: `Set starts from the default snapshot and applies each change in order.

Changes:
  <field>=<value>          clients, avg_wse_per_client, total_wse_direct,
                           avg_annual_wage, mgmt_fee_per_wse, conversion_rate,
                           custom_commission_pct, book_portion_pct
  mode=<by_clients|by_wse>
  tier.<i>.<field>=<value> field is label, amount or pct (i starts at 0)
  add_tier
  remove_tier=<i>
  reset`,
		Example: `  estimate set book_portion_pct=50
  estimate set add_tier tier.1.amount=100000 tier.1.pct=3 mode=by_wse total_wse_direct=500`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes := make([]change, 0, len(args))
			for _, arg := range args {
				c, err := parseChange(arg)
				if err != nil {
					return err
				}
				changes = append(changes, c)
			}

			sess := session.New(inputs.Defaults())
			for i, c := range changes {
				st := sess.Update(c)
				opts.log.Debug("change applied", map[string]interface{}{
					"change":   args[i],
					"revision": st.Revision,
				})
			}

			st := sess.Current()
			return writeSituation(cmd.OutOrStdout(), opts.output, model.Situation{
				Inputs:    st.Inputs,
				Metrics:   st.Metrics,
				Formatted: opts.formatter.Metrics(st.Metrics),
			})
		},
	}
}

type change func(model.Inputs) model.Inputs

// parseChange turns one command-line argument into a snapshot setter.
// Values are passed through as text and coerced by the setter.
func parseChange(arg string) (change, error) {
	key, value, hasValue := strings.Cut(arg, "=")
	key = strings.TrimSpace(key)

	switch {
	case key == "add_tier" && !hasValue:
		return inputs.AddTier, nil
	case key == "reset" && !hasValue:
		return inputs.Reset, nil
	case key == "remove_tier" && hasValue:
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("remove_tier: index %q is not a number", value)
		}
		return func(in model.Inputs) model.Inputs { return inputs.RemoveTier(in, i) }, nil
	case key == "mode" && hasValue:
		return func(in model.Inputs) model.Inputs { return inputs.SetMode(in, value) }, nil
	case strings.HasPrefix(key, "tier.") && hasValue:
		parts := strings.Split(key, ".")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s: expected tier.<index>.<field>", key)
		}
		i, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%s: index %q is not a number", key, parts[1])
		}
		field := parts[2]
		if !inputs.IsTierField(field) {
			return nil, fmt.Errorf("%s: unknown tier field %q", key, field)
		}
		return func(in model.Inputs) model.Inputs { return inputs.UpdateTier(in, i, field, value) }, nil
	case inputs.IsField(key) && hasValue:
		return func(in model.Inputs) model.Inputs { return inputs.SetField(in, key, value) }, nil
	}
	return nil, fmt.Errorf("unrecognised change %q", arg)
}
