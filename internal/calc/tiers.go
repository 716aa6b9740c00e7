package calc

import (
	"github.com/shopspring/decimal"

	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

// BookCommission returns Σ amount × pct/100 over tiers.
func BookCommission(tiers []model.Tier) float64 {
	return bookCommission(tiers).InexactFloat64()
}

func bookCommission(tiers []model.Tier) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tiers {
		amount := dec(coerce.NonNegative(t.Amount, 0))
		pct := dec(coerce.NonNegative(t.Pct, 0))
		total = total.Add(pctOf(amount, pct))
	}
	return total
}
