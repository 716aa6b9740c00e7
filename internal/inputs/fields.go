package inputs

import (
	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

// Scalar fields accepted by SetField.
const (
	FieldClients             = "clients"
	FieldAvgWSEPerClient     = "avg_wse_per_client"
	FieldTotalWSEDirect      = "total_wse_direct"
	FieldAvgAnnualWage       = "avg_annual_wage"
	FieldMgmtFeePerWSE       = "mgmt_fee_per_wse"
	FieldConversionRate      = "conversion_rate"
	FieldCustomCommissionPct = "custom_commission_pct"
	FieldBookPortionPct      = "book_portion_pct"
)

type setter func(in *model.Inputs, v any)

var setters = map[string]setter{
	FieldClients: func(in *model.Inputs, v any) {
		in.Clients = coerce.Count(v, 0)
	},
	FieldAvgWSEPerClient: func(in *model.Inputs, v any) {
		in.AvgWSEPerClient = coerce.NonNegative(v, 0)
	},
	FieldTotalWSEDirect: func(in *model.Inputs, v any) {
		in.TotalWSEDirect = coerce.NonNegative(v, 0)
	},
	FieldAvgAnnualWage: func(in *model.Inputs, v any) {
		in.AvgAnnualWage = coerce.NonNegative(v, 0)
	},
	FieldMgmtFeePerWSE: func(in *model.Inputs, v any) {
		in.MgmtFeePerWSE = coerce.NonNegative(v, 0)
	},
	FieldConversionRate: func(in *model.Inputs, v any) {
		in.ConversionRate = coerce.Clamp(v, 0, 0, 100)
	},
	FieldCustomCommissionPct: func(in *model.Inputs, v any) {
		in.CustomCommissionPct = coerce.Clamp(v, 0, 0, MaxCommissionPct)
	},
	FieldBookPortionPct: func(in *model.Inputs, v any) {
		in.BookPortionPct = coerce.Clamp(v, 0, 0, 100)
	},
}

// IsField reports whether field is accepted by SetField.
func IsField(field string) bool {
	_, ok := setters[field]
	return ok
}

// SetField coerces value into the named scalar field. Unknown fields are
// a no-op.
func SetField(in model.Inputs, field string, value any) model.Inputs {
	set, ok := setters[field]
	if !ok {
		return in
	}
	out := in.Clone()
	set(&out, value)
	return out
}

// SetMode switches which input is authoritative for the total WSE count.
// The inputs of the other mode are kept untouched.
func SetMode(in model.Inputs, mode string) model.Inputs {
	m, ok := ParseMode(mode)
	if !ok {
		return in
	}
	out := in.Clone()
	out.Mode = m
	return out
}
