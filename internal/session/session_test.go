package session

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blended-fee-engine/internal/calc"
	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/model"
)

func TestNewComputesMetrics(t *testing.T) {
	s := New(inputs.Defaults())
	cur := s.Current()

	assert.Equal(t, uint64(0), cur.Revision)
	assert.Equal(t, calc.Compute(inputs.Defaults()), cur.Metrics)
}

func TestUpdateReplacesState(t *testing.T) {
	s := New(inputs.Defaults())
	before := s.Current()

	after := s.Update(func(in model.Inputs) model.Inputs {
		return inputs.SetField(in, inputs.FieldBookPortionPct, 50)
	})

	assert.Same(t, after, s.Current())
	assert.Equal(t, uint64(1), after.Revision)
	assert.Equal(t, 50.0, after.Inputs.BookPortionPct)
	assert.InDelta(t, 22450, after.Metrics.CustomScenario.Total, 1e-9)

	// the earlier state is untouched
	assert.Equal(t, 100.0, before.Inputs.BookPortionPct)
	assert.InDelta(t, 28700, before.Metrics.CustomScenario.Total, 1e-9)
}

func TestApply(t *testing.T) {
	s := New(inputs.Defaults())

	prev, next, msgs := s.Apply(&model.Mutation{
		MutationDefinitionName: "set_input",
		MutationProperties:     json.RawMessage(`{"field": "custom_commission_pct", "value": 20}`),
	})
	require.Empty(t, msgs)
	assert.Equal(t, uint64(0), prev.Revision)
	assert.Equal(t, uint64(1), next.Revision)
	assert.InDelta(t, 34100, next.Metrics.CustomScenario.Total, 1e-9)
}

func TestApplyUnknownMutation(t *testing.T) {
	s := New(inputs.Defaults())

	prev, next, msgs := s.Apply(&model.Mutation{MutationDefinitionName: "apply_indexation"})
	require.Len(t, msgs, 1)
	assert.Equal(t, model.LevelCritical, msgs[0].Level)
	assert.Equal(t, "UNKNOWN_MUTATION", msgs[0].Code)
	assert.Same(t, prev, next)
	assert.Same(t, prev, s.Current())
}

func TestApplyNoOpStillRecomputes(t *testing.T) {
	s := New(inputs.Defaults())

	_, next, msgs := s.Apply(&model.Mutation{
		MutationDefinitionName: "remove_tier",
		MutationProperties:     json.RawMessage(`{"index": 0}`),
	})
	require.Len(t, msgs, 1)
	assert.Equal(t, "LAST_TIER", msgs[0].Code)
	assert.Equal(t, inputs.Defaults(), next.Inputs)
	assert.Equal(t, uint64(1), next.Revision)
}

func TestNewDoesNotAliasCallerTiers(t *testing.T) {
	in := inputs.Defaults()
	s := New(in)
	in.Tiers[0].Amount = 1

	assert.Equal(t, 250000.0, s.Current().Inputs.Tiers[0].Amount)
}
