package model

// Mode selects which input drives the total WSE count.
type Mode string

const (
	ModeByClients Mode = "by_clients"
	ModeByWSE     Mode = "by_wse"
)

// MaxTiers bounds the number of commission tiers in a book.
const MaxTiers = 5

type Tier struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Pct    float64 `json:"pct"`
}

// Inputs is one immutable snapshot of every user-editable value.
// Setters in package inputs return a new Inputs; the Tiers slice is never
// shared between two snapshots.
type Inputs struct {
	Tiers               []Tier  `json:"tiers"`
	Mode                Mode    `json:"mode"`
	Clients             float64 `json:"clients"`
	AvgWSEPerClient     float64 `json:"avg_wse_per_client"`
	TotalWSEDirect      float64 `json:"total_wse_direct"`
	AvgAnnualWage       float64 `json:"avg_annual_wage"`
	MgmtFeePerWSE       float64 `json:"mgmt_fee_per_wse"`
	ConversionRate      float64 `json:"conversion_rate"`
	CustomCommissionPct float64 `json:"custom_commission_pct"`
	BookPortionPct      float64 `json:"book_portion_pct"`
}

// Clone returns a copy of in that owns its own Tiers slice.
func (in Inputs) Clone() Inputs {
	out := in
	out.Tiers = make([]Tier, len(in.Tiers))
	copy(out.Tiers, in.Tiers)
	return out
}
