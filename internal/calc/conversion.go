package calc

import (
	"github.com/shopspring/decimal"

	"blended-fee-engine/internal/coerce"
)

// Conversion is the part of the opportunity assumed to move onto the
// management-fee plan.
type Conversion struct {
	ConvertedWSE int64
	TotalPayroll float64
	GrossMgmtFee float64
}

// Convert scales totalWSE by rate (a percentage). The converted count is
// rounded to a whole employee, never negative and never above a
// fractional total when rate is at most 100; payroll uses the full
// total while the fee only covers converted employees. Out-of-range rates
// are tolerated.
func Convert(totalWSE, rate, avgWage, feePerWSE float64) Conversion {
	c := convert(dec(coerce.NonNegative(totalWSE, 0)), rate, avgWage, feePerWSE)
	return Conversion{
		ConvertedWSE: c.converted.IntPart(),
		TotalPayroll: c.payroll.InexactFloat64(),
		GrossMgmtFee: c.grossFee.InexactFloat64(),
	}
}

type conversion struct {
	converted decimal.Decimal
	payroll   decimal.Decimal
	grossFee  decimal.Decimal
}

func convert(total decimal.Decimal, rate, avgWage, feePerWSE float64) conversion {
	scaled := pctOf(total, dec(coerce.Number(rate, 0)))
	converted := scaled.Round(0)
	if converted.IsNegative() {
		converted = decimal.Zero
	}
	// rounding alone must not push the count past the total (0.6 → 0, not 1)
	if converted.GreaterThan(total) && !scaled.GreaterThan(total) {
		converted = total.Floor()
	}
	return conversion{
		converted: converted,
		payroll:   total.Mul(dec(coerce.NonNegative(avgWage, 0))),
		grossFee:  converted.Mul(dec(coerce.NonNegative(feePerWSE, 0))),
	}
}
