package inputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blended-fee-engine/internal/model"
)

func TestDefaults(t *testing.T) {
	in := Defaults()

	require.Len(t, in.Tiers, 1)
	assert.Equal(t, model.Tier{Label: "Tier 1", Amount: 250000, Pct: 5}, in.Tiers[0])
	assert.Equal(t, model.ModeByClients, in.Mode)
	assert.Equal(t, 20.0, in.Clients)
	assert.Equal(t, 18.0, in.AvgWSEPerClient)
	assert.Equal(t, 360.0, in.TotalWSEDirect)
	assert.Equal(t, 55000.0, in.AvgAnnualWage)
	assert.Equal(t, 1200.0, in.MgmtFeePerWSE)
	assert.Equal(t, 25.0, in.ConversionRate)
	assert.Equal(t, 15.0, in.CustomCommissionPct)
	assert.Equal(t, 100.0, in.BookPortionPct)
}

func TestResetRestoresDefaultsFromAnyState(t *testing.T) {
	in := Defaults()
	in = AddTier(AddTier(in))
	in = UpdateTier(in, 0, TierFieldAmount, 1)
	in = SetMode(in, "by_wse")
	in = SetField(in, FieldClients, 999)
	in = SetField(in, FieldBookPortionPct, 3)

	assert.Equal(t, Defaults(), Reset(in))
}

func TestAddTier(t *testing.T) {
	in := Defaults()
	out := AddTier(in)

	require.Len(t, out.Tiers, 2)
	assert.Equal(t, model.Tier{Label: "Tier 2", Amount: 0, Pct: 5}, out.Tiers[1])
	assert.Len(t, in.Tiers, 1, "original snapshot must not change")
}

func TestAddSixthTierIsNoOp(t *testing.T) {
	in := Defaults()
	for i := 0; i < 10; i++ {
		in = AddTier(in)
	}
	require.Len(t, in.Tiers, model.MaxTiers)
	assert.False(t, CanAddTier(in))
	assert.Equal(t, "Tier 5", in.Tiers[4].Label)

	out := AddTier(in)
	assert.Equal(t, in, out)
}

func TestRemoveLastRemainingTierIsNoOp(t *testing.T) {
	in := Defaults()
	assert.False(t, CanRemoveTier(in, 0))
	assert.Equal(t, in, RemoveTier(in, 0))
}

func TestRemoveTierKeepsLabels(t *testing.T) {
	in := AddTier(AddTier(Defaults()))
	out := RemoveTier(in, 1)

	require.Len(t, out.Tiers, 2)
	assert.Equal(t, "Tier 1", out.Tiers[0].Label)
	assert.Equal(t, "Tier 3", out.Tiers[1].Label)
	assert.Len(t, in.Tiers, 3)
	assert.Equal(t, "Tier 2", in.Tiers[1].Label)
}

func TestRemoveTierOutOfRange(t *testing.T) {
	in := AddTier(Defaults())
	assert.Equal(t, in, RemoveTier(in, 2))
	assert.Equal(t, in, RemoveTier(in, -1))
}

func TestUpdateTier(t *testing.T) {
	in := AddTier(Defaults())

	out := UpdateTier(in, 1, TierFieldAmount, "$100,000")
	out = UpdateTier(out, 1, TierFieldPct, "7.5")
	out = UpdateTier(out, 1, TierFieldLabel, "Legacy")

	assert.Equal(t, model.Tier{Label: "Legacy", Amount: 100000, Pct: 7.5}, out.Tiers[1])
	assert.Equal(t, model.Tier{Label: "Tier 2", Amount: 0, Pct: 5}, in.Tiers[1])
}

func TestUpdateTierCoercion(t *testing.T) {
	in := Defaults()

	assert.Equal(t, 0.0, UpdateTier(in, 0, TierFieldAmount, "abc").Tiers[0].Amount)
	assert.Equal(t, 0.0, UpdateTier(in, 0, TierFieldAmount, -5).Tiers[0].Amount)
	assert.Equal(t, 100.0, UpdateTier(in, 0, TierFieldPct, 250).Tiers[0].Pct)
	assert.Equal(t, "42", UpdateTier(in, 0, TierFieldLabel, 42).Tiers[0].Label)
}

func TestUpdateTierNoOps(t *testing.T) {
	in := Defaults()
	assert.Equal(t, in, UpdateTier(in, 1, TierFieldAmount, 5))
	assert.Equal(t, in, UpdateTier(in, -1, TierFieldAmount, 5))
	assert.Equal(t, in, UpdateTier(in, 0, "colour", 5))
}

func TestSetField(t *testing.T) {
	in := Defaults()

	assert.Equal(t, 25.0, SetField(in, FieldClients, "25").Clients)
	assert.Equal(t, 12.0, SetField(in, FieldClients, 12.7).Clients)
	assert.Equal(t, 0.0, SetField(in, FieldAvgWSEPerClient, -4).AvgWSEPerClient)
	assert.Equal(t, 400.0, SetField(in, FieldTotalWSEDirect, 400).TotalWSEDirect)
	assert.Equal(t, 60000.0, SetField(in, FieldAvgAnnualWage, "$60,000").AvgAnnualWage)
	assert.Equal(t, 1500.0, SetField(in, FieldMgmtFeePerWSE, 1500).MgmtFeePerWSE)
	assert.Equal(t, 100.0, SetField(in, FieldConversionRate, 140).ConversionRate)
	assert.Equal(t, 50.0, SetField(in, FieldCustomCommissionPct, 75).CustomCommissionPct)
	assert.Equal(t, 20.0, SetField(in, FieldCustomCommissionPct, 20).CustomCommissionPct)
	assert.Equal(t, 0.0, SetField(in, FieldBookPortionPct, "none").BookPortionPct)

	assert.Equal(t, in, SetField(in, "unknown", 1))
	assert.Equal(t, 20.0, in.Clients)
}

func TestSetModeIsNonDestructive(t *testing.T) {
	in := Defaults()

	wse := SetMode(in, "by_wse")
	assert.Equal(t, model.ModeByWSE, wse.Mode)

	back := SetMode(wse, "by_clients")
	assert.Equal(t, in, back)

	assert.Equal(t, in, SetMode(in, "by_region"))
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("WSE")
	assert.True(t, ok)
	assert.Equal(t, model.ModeByWSE, m)

	m, ok = ParseMode(" clients ")
	assert.True(t, ok)
	assert.Equal(t, model.ModeByClients, m)

	_, ok = ParseMode("")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Defaults(), Normalize(nil))
	assert.Equal(t, Defaults(), Normalize(&model.RawInputs{}))

	raw := &model.RawInputs{
		Tiers: []model.RawTier{
			{Label: "Core", Amount: "$100,000", Pct: "4"},
			{Amount: 50000, Pct: 200},
		},
		Mode:                "wse",
		Clients:             "abc",
		TotalWSEDirect:      "1,000",
		ConversionRate:      -10,
		CustomCommissionPct: 90,
	}
	in := Normalize(raw)

	require.Len(t, in.Tiers, 2)
	assert.Equal(t, model.Tier{Label: "Core", Amount: 100000, Pct: 4}, in.Tiers[0])
	assert.Equal(t, model.Tier{Label: "Tier 2", Amount: 50000, Pct: 100}, in.Tiers[1])
	assert.Equal(t, model.ModeByWSE, in.Mode)
	assert.Equal(t, 20.0, in.Clients)
	assert.Equal(t, 1000.0, in.TotalWSEDirect)
	assert.Equal(t, 0.0, in.ConversionRate)
	assert.Equal(t, 50.0, in.CustomCommissionPct)
	assert.Equal(t, 100.0, in.BookPortionPct)
}

func TestNormalizeCapsTiers(t *testing.T) {
	raw := &model.RawInputs{}
	for i := 0; i < 8; i++ {
		raw.Tiers = append(raw.Tiers, model.RawTier{Amount: 1000, Pct: 1})
	}
	assert.Len(t, Normalize(raw).Tiers, model.MaxTiers)
}
