// Package inputs owns the editable snapshot: its documented defaults and
// the setters that derive a new snapshot from an old one. Every setter
// coerces its value and returns a fresh Inputs; the argument is never
// modified. Structural violations leave the snapshot unchanged.
package inputs

import (
	"strings"

	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

const (
	DefaultTierLabel       = "Tier 1"
	DefaultTierAmount      = 250000
	DefaultTierPct         = 5
	DefaultClients         = 20
	DefaultAvgWSEPerClient = 18
	DefaultTotalWSEDirect  = 360
	DefaultAvgAnnualWage   = 55000
	DefaultMgmtFeePerWSE   = 1200
	DefaultConversionRate  = 25
	DefaultCommissionPct   = 15
	DefaultBookPortionPct  = 100

	// NewTierPct is the commission rate given to an appended tier.
	NewTierPct = 5

	MaxCommissionPct = 50
)

// Defaults returns the snapshot restored by a reset.
func Defaults() model.Inputs {
	return model.Inputs{
		Tiers: []model.Tier{
			{Label: DefaultTierLabel, Amount: DefaultTierAmount, Pct: DefaultTierPct},
		},
		Mode:                model.ModeByClients,
		Clients:             DefaultClients,
		AvgWSEPerClient:     DefaultAvgWSEPerClient,
		TotalWSEDirect:      DefaultTotalWSEDirect,
		AvgAnnualWage:       DefaultAvgAnnualWage,
		MgmtFeePerWSE:       DefaultMgmtFeePerWSE,
		ConversionRate:      DefaultConversionRate,
		CustomCommissionPct: DefaultCommissionPct,
		BookPortionPct:      DefaultBookPortionPct,
	}
}

// Reset ignores the current snapshot and returns the defaults.
func Reset(model.Inputs) model.Inputs {
	return Defaults()
}

// Normalize coerces a raw snapshot. Absent values take their defaults,
// tiers beyond MaxTiers are dropped and an empty tier list becomes the
// default tier.
func Normalize(raw *model.RawInputs) model.Inputs {
	in := Defaults()
	if raw == nil {
		return in
	}

	if len(raw.Tiers) > 0 {
		n := min(len(raw.Tiers), model.MaxTiers)
		in.Tiers = make([]model.Tier, 0, n)
		for i, rt := range raw.Tiers[:n] {
			label := rt.Label
			if strings.TrimSpace(label) == "" {
				label = tierLabel(i + 1)
			}
			in.Tiers = append(in.Tiers, model.Tier{
				Label:  label,
				Amount: coerce.NonNegative(rt.Amount, 0),
				Pct:    coerce.Clamp(rt.Pct, 0, 0, 100),
			})
		}
	}

	if m, ok := ParseMode(raw.Mode); ok {
		in.Mode = m
	}

	in.Clients = coerce.Count(raw.Clients, in.Clients)
	in.AvgWSEPerClient = coerce.NonNegative(raw.AvgWSEPerClient, in.AvgWSEPerClient)
	in.TotalWSEDirect = coerce.NonNegative(raw.TotalWSEDirect, in.TotalWSEDirect)
	in.AvgAnnualWage = coerce.NonNegative(raw.AvgAnnualWage, in.AvgAnnualWage)
	in.MgmtFeePerWSE = coerce.NonNegative(raw.MgmtFeePerWSE, in.MgmtFeePerWSE)
	in.ConversionRate = coerce.Clamp(raw.ConversionRate, in.ConversionRate, 0, 100)
	in.CustomCommissionPct = coerce.Clamp(raw.CustomCommissionPct, in.CustomCommissionPct, 0, MaxCommissionPct)
	in.BookPortionPct = coerce.Clamp(raw.BookPortionPct, in.BookPortionPct, 0, 100)
	return in
}

// ParseMode accepts the canonical mode names plus the short forms
// "clients" and "wse", case-insensitively.
func ParseMode(s string) (model.Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(model.ModeByClients), "clients", "byclients":
		return model.ModeByClients, true
	case string(model.ModeByWSE), "wse", "bywse":
		return model.ModeByWSE, true
	}
	return "", false
}
