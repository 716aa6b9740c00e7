package mutations

import (
	"fmt"

	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/model"
)

type AddTierHandler struct{}

func (h *AddTierHandler) Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage {
	if !inputs.CanAddTier(state) {
		return []model.CalculationMessage{
			warning("TIER_LIMIT_REACHED", fmt.Sprintf("A book holds at most %d tiers", model.MaxTiers)),
		}
	}
	return nil
}

func (h *AddTierHandler) Apply(state model.Inputs, mutation *model.Mutation) model.Inputs {
	return inputs.AddTier(state)
}

type tierIndexProps struct {
	Index any `json:"index"`
}

type RemoveTierHandler struct{}

func (h *RemoveTierHandler) Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage {
	var props tierIndexProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err)
	}

	i := index(props.Index)
	if i < 0 || i >= len(state.Tiers) {
		return []model.CalculationMessage{
			warning("TIER_INDEX_OUT_OF_RANGE", fmt.Sprintf("No tier at index %v", props.Index)),
		}
	}
	if len(state.Tiers) == 1 {
		return []model.CalculationMessage{
			warning("LAST_TIER", "The last remaining tier cannot be removed"),
		}
	}
	return nil
}

func (h *RemoveTierHandler) Apply(state model.Inputs, mutation *model.Mutation) model.Inputs {
	var props tierIndexProps
	if err := decodeProps(mutation, &props); err != nil {
		return state
	}
	return inputs.RemoveTier(state, index(props.Index))
}

type updateTierProps struct {
	Index any    `json:"index"`
	Field string `json:"field"`
	Value any    `json:"value"`
}

type UpdateTierHandler struct{}

func (h *UpdateTierHandler) Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage {
	var props updateTierProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err)
	}

	i := index(props.Index)
	if i < 0 || i >= len(state.Tiers) {
		return []model.CalculationMessage{
			warning("TIER_INDEX_OUT_OF_RANGE", fmt.Sprintf("No tier at index %v", props.Index)),
		}
	}
	if !inputs.IsTierField(props.Field) {
		return []model.CalculationMessage{
			warning("UNKNOWN_FIELD", fmt.Sprintf("Unknown tier field %q", props.Field)),
		}
	}
	return nil
}

func (h *UpdateTierHandler) Apply(state model.Inputs, mutation *model.Mutation) model.Inputs {
	var props updateTierProps
	if err := decodeProps(mutation, &props); err != nil {
		return state
	}
	return inputs.UpdateTier(state, index(props.Index), props.Field, props.Value)
}
