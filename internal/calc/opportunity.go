package calc

import (
	"github.com/shopspring/decimal"

	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

// TotalWSE returns the addressable worksite-employee count for the
// snapshot's mode.
func TotalWSE(in model.Inputs) float64 {
	return totalWSE(in).InexactFloat64()
}

func totalWSE(in model.Inputs) decimal.Decimal {
	if in.Mode == model.ModeByWSE {
		return dec(coerce.NonNegative(in.TotalWSEDirect, 0))
	}
	clients := dec(coerce.NonNegative(in.Clients, 0))
	perClient := dec(coerce.NonNegative(in.AvgWSEPerClient, 0))
	return clients.Mul(perClient)
}
