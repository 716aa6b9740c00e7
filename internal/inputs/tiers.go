package inputs

import (
	"strconv"

	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

// Tier fields accepted by UpdateTier.
const (
	TierFieldLabel  = "label"
	TierFieldAmount = "amount"
	TierFieldPct    = "pct"
)

func tierLabel(n int) string {
	return "Tier " + strconv.Itoa(n)
}

// CanAddTier reports whether AddTier would change the snapshot.
func CanAddTier(in model.Inputs) bool {
	return len(in.Tiers) < model.MaxTiers
}

// CanRemoveTier reports whether RemoveTier(in, index) would change the snapshot.
func CanRemoveTier(in model.Inputs, index int) bool {
	return len(in.Tiers) > 1 && index >= 0 && index < len(in.Tiers)
}

// AddTier appends "Tier N" with amount 0 and the default rate.
func AddTier(in model.Inputs) model.Inputs {
	if !CanAddTier(in) {
		return in
	}
	out := in.Clone()
	out.Tiers = append(out.Tiers, model.Tier{
		Label:  tierLabel(len(in.Tiers) + 1),
		Amount: 0,
		Pct:    NewTierPct,
	})
	return out
}

// RemoveTier drops the tier at index. Remaining labels are kept as-is.
func RemoveTier(in model.Inputs, index int) model.Inputs {
	if !CanRemoveTier(in, index) {
		return in
	}
	out := in.Clone()
	out.Tiers = append(out.Tiers[:index], out.Tiers[index+1:]...)
	return out
}

// IsTierField reports whether field is accepted by UpdateTier.
func IsTierField(field string) bool {
	switch field {
	case TierFieldLabel, TierFieldAmount, TierFieldPct:
		return true
	}
	return false
}

// UpdateTier sets one field of the tier at index.
func UpdateTier(in model.Inputs, index int, field string, value any) model.Inputs {
	if index < 0 || index >= len(in.Tiers) || !IsTierField(field) {
		return in
	}
	out := in.Clone()
	t := &out.Tiers[index]
	switch field {
	case TierFieldLabel:
		if s, ok := value.(string); ok {
			t.Label = s
		} else if value != nil {
			t.Label = strconv.FormatFloat(coerce.Number(value, 0), 'f', -1, 64)
		}
	case TierFieldAmount:
		t.Amount = coerce.NonNegative(value, 0)
	case TierFieldPct:
		t.Pct = coerce.Clamp(value, 0, 0, 100)
	}
	return out
}
