package model

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// OptionalPct is a percentage that may be undefined (division by zero).
// Undefined values encode as JSON null and never take part in arithmetic.
type OptionalPct struct {
	Value   float64
	Defined bool
}

func DefinedPct(v float64) OptionalPct { return OptionalPct{Value: v, Defined: true} }

var UndefinedPct = OptionalPct{}

func (p OptionalPct) MarshalJSON() ([]byte, error) {
	if !p.Defined {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, p.Value, 'f', -1, 64), nil
}

func (p *OptionalPct) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = UndefinedPct
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = DefinedPct(v)
	return nil
}

// Scenario is one blended-revenue outcome compared against the current book.
type Scenario struct {
	MgmtFeeCommission float64     `json:"mgmt_fee_commission"`
	Book              float64     `json:"book"`
	Total             float64     `json:"total"`
	UpliftAbs         float64     `json:"uplift_abs"`
	UpliftPct         OptionalPct `json:"uplift_pct"`
	MgmtSharePct      OptionalPct `json:"mgmt_share_pct"`
	BookSharePct      OptionalPct `json:"book_share_pct"`
}

// Metrics holds every value derived from an Inputs snapshot.
type Metrics struct {
	TotalBookCommission   float64  `json:"total_book_commission"`
	TotalWSE              float64  `json:"total_wse"`
	ConvertedWSE          int64    `json:"converted_wse"`
	TotalPayroll          float64  `json:"total_payroll"`
	GrossMgmtFee          float64  `json:"gross_mgmt_fee"`
	StaticScenario        Scenario `json:"static_scenario"`
	CustomScenario        Scenario `json:"custom_scenario"`
	PerClientAddedRevenue float64  `json:"per_client_added_revenue"`
}

type FormattedScenario struct {
	MgmtFeeCommission string `json:"mgmt_fee_commission"`
	Book              string `json:"book"`
	Total             string `json:"total"`
	UpliftAbs         string `json:"uplift_abs"`
	UpliftPct         string `json:"uplift_pct"`
	MgmtSharePct      string `json:"mgmt_share_pct"`
	BookSharePct      string `json:"book_share_pct"`
}

// FormattedMetrics is the display rendering of Metrics.
type FormattedMetrics struct {
	TotalBookCommission   string            `json:"total_book_commission"`
	TotalWSE              string            `json:"total_wse"`
	ConvertedWSE          string            `json:"converted_wse"`
	TotalPayroll          string            `json:"total_payroll"`
	GrossMgmtFee          string            `json:"gross_mgmt_fee"`
	StaticScenario        FormattedScenario `json:"static_scenario"`
	CustomScenario        FormattedScenario `json:"custom_scenario"`
	PerClientAddedRevenue string            `json:"per_client_added_revenue"`
}
