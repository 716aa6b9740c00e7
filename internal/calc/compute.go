// Package calc derives every financial metric from an input snapshot.
// All functions are pure; money is carried as decimal.Decimal internally
// and exposed as float64.
package calc

import "blended-fee-engine/internal/model"

// Compute recalculates all metrics from one snapshot.
func Compute(in model.Inputs) model.Metrics {
	book := bookCommission(in.Tiers)
	total := totalWSE(in)
	conv := convert(total, in.ConversionRate, in.AvgAnnualWage, in.MgmtFeePerWSE)
	custom := customScenario(conv.grossFee, book, in.CustomCommissionPct, in.BookPortionPct)

	return model.Metrics{
		TotalBookCommission:   book.InexactFloat64(),
		TotalWSE:              total.InexactFloat64(),
		ConvertedWSE:          conv.converted.IntPart(),
		TotalPayroll:          conv.payroll.InexactFloat64(),
		GrossMgmtFee:          conv.grossFee.InexactFloat64(),
		StaticScenario:        StaticScenario(),
		CustomScenario:        custom,
		PerClientAddedRevenue: PerClientRevenue(custom.MgmtFeeCommission, in.Clients),
	}
}
