package engine

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/jsonpatch"
	"blended-fee-engine/internal/model"
)

func request(muts ...model.Mutation) *model.CalculationRequest {
	return &model.CalculationRequest{
		ScenarioID: "test-scenario",
		CalculationInstructions: model.CalculationInstructions{
			Mutations: muts,
		},
	}
}

func mut(id, name, props string) model.Mutation {
	m := model.Mutation{MutationID: id, MutationDefinitionName: name}
	if props != "" {
		m.MutationProperties = json.RawMessage(props)
	}
	return m
}

func TestProcessNoMutations(t *testing.T) {
	resp := Process(request(), nil)

	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	assert.Equal(t, "test-scenario", resp.CalculationMetadata.ScenarioID)
	assert.NotEmpty(t, resp.CalculationMetadata.CalculationID)
	assert.Empty(t, resp.CalculationResult.Messages)
	assert.Empty(t, resp.CalculationResult.Mutations)

	end := resp.CalculationResult.EndSituation
	assert.Equal(t, -1, end.MutationIndex)
	assert.Equal(t, inputs.Defaults(), end.Situation.Inputs)
	assert.Equal(t, "$28,700", end.Situation.Formatted.CustomScenario.Total)
	assert.Equal(t, resp.CalculationResult.InitialSituation, end.Situation)
}

func TestProcessSliderSequence(t *testing.T) {
	resp := Process(request(
		mut("m1", "set_input", `{"field": "book_portion_pct", "value": 50}`),
		mut("m2", "set_input", `{"field": "book_portion_pct", "value": 100}`),
		mut("m3", "set_input", `{"field": "custom_commission_pct", "value": 20}`),
	), nil)

	require.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	require.Len(t, resp.CalculationResult.Mutations, 3)

	end := resp.CalculationResult.EndSituation
	assert.Equal(t, "m3", end.MutationID)
	assert.Equal(t, 2, end.MutationIndex)

	c := end.Situation.Metrics.CustomScenario
	assert.InDelta(t, 21600, c.MgmtFeeCommission, 1e-9)
	assert.InDelta(t, 34100, c.Total, 1e-9)
	assert.InDelta(t, 21600, c.UpliftAbs, 1e-9)
	assert.Equal(t, "172.8%", end.Situation.Formatted.CustomScenario.UpliftPct)

	var ops []map[string]any
	require.NoError(t, json.Unmarshal(resp.CalculationResult.Mutations[0].MetricsPatch, &ops))
	paths := map[string]any{}
	for _, op := range ops {
		paths[op["path"].(string)] = op["value"]
	}
	assert.Equal(t, 22450.0, paths["/custom_scenario/total"])
}

func TestProcessInitialInputs(t *testing.T) {
	req := request(mut("m1", "set_mode", `{"mode": "by_clients"}`))
	req.InitialInputs = &model.RawInputs{
		Mode:           "by_wse",
		TotalWSEDirect: "1,000",
		Clients:        "10",
	}

	resp := Process(req, nil)

	initial := resp.CalculationResult.InitialSituation
	assert.Equal(t, model.ModeByWSE, initial.Inputs.Mode)
	assert.Equal(t, 1000.0, initial.Metrics.TotalWSE)
	assert.Equal(t, int64(250), initial.Metrics.ConvertedWSE)

	end := resp.CalculationResult.EndSituation.Situation
	assert.Equal(t, 180.0, end.Metrics.TotalWSE)
	assert.Equal(t, 1000.0, end.Inputs.TotalWSEDirect, "mode switch keeps the direct total")
}

func TestProcessStructuralNoOpsWarnButSucceed(t *testing.T) {
	resp := Process(request(
		mut("m1", "remove_tier", `{"index": 0}`),
		mut("m2", "add_tier", ""),
		mut("m3", "update_tier", `{"index": 9, "field": "amount", "value": 1}`),
	), nil)

	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)

	msgs := resp.CalculationResult.Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, "LAST_TIER", msgs[0].Code)
	assert.Equal(t, 0, msgs[0].ID)
	assert.Equal(t, "TIER_INDEX_OUT_OF_RANGE", msgs[1].Code)
	assert.Equal(t, 1, msgs[1].ID)

	muts := resp.CalculationResult.Mutations
	assert.Equal(t, []int{0}, muts[0].CalculationMessageIndexes)
	assert.Nil(t, muts[1].CalculationMessageIndexes)
	assert.Equal(t, []int{1}, muts[2].CalculationMessageIndexes)
	assert.JSONEq(t, "[]", string(muts[0].MetricsPatch))

	end := resp.CalculationResult.EndSituation.Situation
	assert.Len(t, end.Inputs.Tiers, 2)
}

func TestProcessUnknownMutationStops(t *testing.T) {
	resp := Process(request(
		mut("m1", "set_input", `{"field": "clients", "value": 30}`),
		mut("m2", "create_dossier", `{}`),
		mut("m3", "set_input", `{"field": "clients", "value": 40}`),
	), nil)

	assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
	require.Len(t, resp.CalculationResult.Messages, 1)
	assert.Equal(t, "UNKNOWN_MUTATION", resp.CalculationResult.Messages[0].Code)
	assert.Len(t, resp.CalculationResult.Mutations, 2)
	assert.Empty(t, resp.CalculationResult.Mutations[1].MetricsPatch)

	end := resp.CalculationResult.EndSituation
	assert.Equal(t, "m1", end.MutationID)
	assert.Equal(t, 0, end.MutationIndex)
	assert.Equal(t, 30.0, end.Situation.Inputs.Clients)
}

func TestProcessResetRestoresDefaults(t *testing.T) {
	resp := Process(request(
		mut("m1", "add_tier", ""),
		mut("m2", "update_tier", `{"index": 1, "field": "amount", "value": 50000}`),
		mut("m3", "set_mode", `{"mode": "wse"}`),
		mut("m4", "reset", ""),
	), nil)

	end := resp.CalculationResult.EndSituation.Situation
	assert.Equal(t, inputs.Defaults(), end.Inputs)
	assert.Equal(t, resp.CalculationResult.InitialSituation.Metrics, end.Metrics)
}

func TestProcessPatchCarriesUndefinedAsNull(t *testing.T) {
	resp := Process(request(
		mut("m1", "update_tier", `{"index": 0, "field": "amount", "value": 0}`),
	), nil)

	var ops []jsonpatch.Operation
	raw := resp.CalculationResult.Mutations[0].MetricsPatch
	require.NoError(t, json.Unmarshal(raw, &ops))
	assert.Contains(t, string(raw), `"path":"/custom_scenario/uplift_pct","value":null`)
}

func TestProcessResponseEncodes(t *testing.T) {
	resp := Process(request(mut("m1", "add_tier", "")), nil)

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded model.CalculationResponse
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, resp.CalculationResult.EndSituation.Situation.Metrics, decoded.CalculationResult.EndSituation.Situation.Metrics)
}

func TestEvaluate(t *testing.T) {
	s := Evaluate(inputs.Defaults(), nil)
	assert.Equal(t, "$12,500", s.Formatted.TotalBookCommission)
	assert.Equal(t, "129.6%", s.Formatted.CustomScenario.UpliftPct)
}
