// Package format renders metrics for display: whole-dollar currency,
// one-decimal percentages and a placeholder for undefined values.
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"blended-fee-engine/internal/model"
)

const (
	DefaultLocale      = "en-US"
	DefaultPlaceholder = "—"
)

type Formatter struct {
	printer     *message.Printer
	placeholder string
}

// New builds a Formatter for a BCP 47 locale tag.
func New(locale, placeholder string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Formatter{printer: message.NewPrinter(tag), placeholder: placeholder}, nil
}

// Default is the en-US formatter with the default placeholder.
func Default() *Formatter {
	return &Formatter{
		printer:     message.NewPrinter(language.AmericanEnglish),
		placeholder: DefaultPlaceholder,
	}
}

func (f *Formatter) Placeholder() string { return f.placeholder }

// Currency renders v as whole US dollars, e.g. "$12,500" or "-$9,950".
func (f *Formatter) Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.placeholder
	}
	d := decimal.NewFromFloat(v).Round(0)
	s := "$" + f.whole(d.Abs())
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// whole renders a non-negative integral value with grouping. It never
// converts to int64, so values past its range keep their digits.
func (f *Formatter) whole(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}

// Percent renders p with one decimal and a "%" suffix.
func (f *Formatter) Percent(p model.OptionalPct) string {
	if !p.Defined || math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
		return f.placeholder
	}
	return f.printer.Sprintf("%.1f%%", p.Value)
}

// Count renders a headcount; fractional counts keep up to two decimals.
func (f *Formatter) Count(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.placeholder
	}
	if v == math.Trunc(v) {
		d := decimal.NewFromFloat(v)
		if d.IsNegative() {
			return "-" + f.whole(d.Abs())
		}
		return f.whole(d)
	}
	return f.printer.Sprintf("%.2f", v)
}

func (f *Formatter) Scenario(s model.Scenario) model.FormattedScenario {
	return model.FormattedScenario{
		MgmtFeeCommission: f.Currency(s.MgmtFeeCommission),
		Book:              f.Currency(s.Book),
		Total:             f.Currency(s.Total),
		UpliftAbs:         f.Currency(s.UpliftAbs),
		UpliftPct:         f.Percent(s.UpliftPct),
		MgmtSharePct:      f.Percent(s.MgmtSharePct),
		BookSharePct:      f.Percent(s.BookSharePct),
	}
}

func (f *Formatter) Metrics(m model.Metrics) model.FormattedMetrics {
	return model.FormattedMetrics{
		TotalBookCommission:   f.Currency(m.TotalBookCommission),
		TotalWSE:              f.Count(m.TotalWSE),
		ConvertedWSE:          f.Count(float64(m.ConvertedWSE)),
		TotalPayroll:          f.Currency(m.TotalPayroll),
		GrossMgmtFee:          f.Currency(m.GrossMgmtFee),
		StaticScenario:        f.Scenario(m.StaticScenario),
		CustomScenario:        f.Scenario(m.CustomScenario),
		PerClientAddedRevenue: f.Currency(m.PerClientAddedRevenue),
	}
}
