package mutations

import (
	"fmt"

	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/model"
)

type setModeProps struct {
	Mode string `json:"mode"`
}

type SetModeHandler struct{}

func (h *SetModeHandler) Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage {
	var props setModeProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err)
	}
	if _, ok := inputs.ParseMode(props.Mode); !ok {
		return []model.CalculationMessage{
			warning("UNKNOWN_MODE", fmt.Sprintf("Unknown mode %q", props.Mode)),
		}
	}
	return nil
}

func (h *SetModeHandler) Apply(state model.Inputs, mutation *model.Mutation) model.Inputs {
	var props setModeProps
	if err := decodeProps(mutation, &props); err != nil {
		return state
	}
	return inputs.SetMode(state, props.Mode)
}

type setInputProps struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type SetInputHandler struct{}

func (h *SetInputHandler) Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage {
	var props setInputProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err)
	}
	if !inputs.IsField(props.Field) {
		return []model.CalculationMessage{
			warning("UNKNOWN_FIELD", fmt.Sprintf("Unknown input field %q", props.Field)),
		}
	}
	return nil
}

func (h *SetInputHandler) Apply(state model.Inputs, mutation *model.Mutation) model.Inputs {
	var props setInputProps
	if err := decodeProps(mutation, &props); err != nil {
		return state
	}
	return inputs.SetField(state, props.Field, props.Value)
}

type ResetHandler struct{}

func (h *ResetHandler) Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage {
	return nil
}

func (h *ResetHandler) Apply(state model.Inputs, mutation *model.Mutation) model.Inputs {
	return inputs.Reset(state)
}
