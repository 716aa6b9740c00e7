package calc

import (
	"github.com/shopspring/decimal"

	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

// Reference scenario shown next to the custom one. These do not depend on
// any input.
const (
	StaticMgmtFee = 21600
	StaticBook    = 12500
)

// StaticScenario returns the fixed reference illustration.
func StaticScenario() model.Scenario {
	book := decimal.NewFromInt(StaticBook)
	return scenario(decimal.NewFromInt(StaticMgmtFee), book, book)
}

// CustomScenario blends commissionPct of the gross management fee with
// bookPortionPct of the current book. Uplift is measured against the full,
// unadjusted book. The percentages are used as given.
func CustomScenario(grossMgmtFee, bookCommission, commissionPct, bookPortionPct float64) model.Scenario {
	return customScenario(
		dec(coerce.Number(grossMgmtFee, 0)),
		dec(coerce.Number(bookCommission, 0)),
		commissionPct, bookPortionPct,
	)
}

func customScenario(grossFee, book decimal.Decimal, commissionPct, bookPortionPct float64) model.Scenario {
	commission := pctOf(grossFee, dec(coerce.Number(commissionPct, 0)))
	adjusted := pctOf(book, dec(coerce.Number(bookPortionPct, 0)))
	return scenario(commission, adjusted, book)
}

func scenario(commission, adjustedBook, fullBook decimal.Decimal) model.Scenario {
	total := commission.Add(adjustedBook)
	uplift := total.Sub(fullBook)
	return model.Scenario{
		MgmtFeeCommission: commission.InexactFloat64(),
		Book:              adjustedBook.InexactFloat64(),
		Total:             total.InexactFloat64(),
		UpliftAbs:         uplift.InexactFloat64(),
		UpliftPct:         ratioPct(uplift, fullBook),
		MgmtSharePct:      ratioPct(commission, total),
		BookSharePct:      ratioPct(adjustedBook, total),
	}
}

// ratioPct returns num/den × 100, undefined when den is zero.
func ratioPct(num, den decimal.Decimal) model.OptionalPct {
	if den.IsZero() {
		return model.UndefinedPct
	}
	return model.DefinedPct(num.Mul(hundred).Div(den).InexactFloat64())
}

// PerClientRevenue spreads the management-fee commission over clients.
// It is zero, not undefined, when there are no clients.
func PerClientRevenue(commission, clients float64) float64 {
	c := coerce.NonNegative(clients, 0)
	if c == 0 {
		return 0
	}
	return dec(coerce.Number(commission, 0)).Div(dec(c)).InexactFloat64()
}
