package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// pctOf returns base × pct/100.
func pctOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}
