package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"blended-fee-engine/internal/model"
)

const ruleWidth = 70

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResponse(w io.Writer, output string, resp *model.CalculationResponse) error {
	if output == "json" {
		return writeJSON(w, resp)
	}

	meta := resp.CalculationMetadata
	res := resp.CalculationResult

	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	if meta.ScenarioID != "" {
		fmt.Fprintf(w, "SCENARIO: %s\n", meta.ScenarioID)
	}
	fmt.Fprintf(w, "Outcome: %s (%d of %d mutations applied, %d ms)\n",
		meta.CalculationOutcome, res.EndSituation.MutationIndex+1, len(res.Mutations), meta.CalculationDurationMs)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	if len(res.Messages) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Messages:")
		for _, m := range res.Messages {
			fmt.Fprintf(w, "  [%s] %s: %s\n", m.Level, m.Code, m.Message)
		}
	}

	fmt.Fprintln(w)
	printSituation(w, res.EndSituation.Situation)
	return nil
}

func writeSituation(w io.Writer, output string, s model.Situation) error {
	if output == "json" {
		return writeJSON(w, s)
	}
	printSituation(w, s)
	return nil
}

func printSituation(w io.Writer, s model.Situation) {
	in := s.Inputs
	f := s.Formatted

	fmt.Fprintln(w, "Book of business:")
	for _, t := range in.Tiers {
		fmt.Fprintf(w, "  %-20s %14.2f @ %5.2f%%\n", t.Label, t.Amount, t.Pct)
	}
	fmt.Fprintf(w, "  %-20s %14s\n", "Total commission", f.TotalBookCommission)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Opportunity:")
	fmt.Fprintf(w, "  %-20s %14s\n", "Mode", in.Mode)
	fmt.Fprintf(w, "  %-20s %14s\n", "Total WSE", f.TotalWSE)
	fmt.Fprintf(w, "  %-20s %14s\n", "Converted WSE", f.ConvertedWSE)
	fmt.Fprintf(w, "  %-20s %14s\n", "Total payroll", f.TotalPayroll)
	fmt.Fprintf(w, "  %-20s %14s\n", "Gross mgmt fee", f.GrossMgmtFee)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-22s %16s %16s\n", "", "Static", "Custom")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	rows := []struct {
		label          string
		static, custom string
	}{
		{"Mgmt fee commission", f.StaticScenario.MgmtFeeCommission, f.CustomScenario.MgmtFeeCommission},
		{"Book", f.StaticScenario.Book, f.CustomScenario.Book},
		{"Total", f.StaticScenario.Total, f.CustomScenario.Total},
		{"Uplift", f.StaticScenario.UpliftAbs, f.CustomScenario.UpliftAbs},
		{"Uplift %", f.StaticScenario.UpliftPct, f.CustomScenario.UpliftPct},
		{"Mgmt share", f.StaticScenario.MgmtSharePct, f.CustomScenario.MgmtSharePct},
		{"Book share", f.StaticScenario.BookSharePct, f.CustomScenario.BookSharePct},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-22s %16s %16s\n", r.label, r.static, r.custom)
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "%-22s %16s\n", "Added per client", f.PerClientAddedRevenue)
}
