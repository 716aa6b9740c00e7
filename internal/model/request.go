package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	ScenarioID              string                  `json:"scenario_id,omitempty"`
	InitialInputs           *RawInputs              `json:"initial_inputs,omitempty"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

type CalculationInstructions struct {
	Mutations []Mutation `json:"mutations"`
}

type Mutation struct {
	MutationID             string          `json:"mutation_id"`
	MutationDefinitionName string          `json:"mutation_definition_name"`
	MutationProperties     json.RawMessage `json:"mutation_properties,omitempty"`
}

// RawTier is a tier as typed by the user, before coercion.
type RawTier struct {
	Label  string `json:"label" yaml:"label"`
	Amount any    `json:"amount" yaml:"amount"`
	Pct    any    `json:"pct" yaml:"pct"`
}

// RawInputs carries a snapshot whose values have not been coerced yet.
// Absent (nil) values take the documented defaults.
type RawInputs struct {
	Tiers               []RawTier `json:"tiers,omitempty" yaml:"tiers,omitempty"`
	Mode                string    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Clients             any       `json:"clients,omitempty" yaml:"clients,omitempty"`
	AvgWSEPerClient     any       `json:"avg_wse_per_client,omitempty" yaml:"avg_wse_per_client,omitempty"`
	TotalWSEDirect      any       `json:"total_wse_direct,omitempty" yaml:"total_wse_direct,omitempty"`
	AvgAnnualWage       any       `json:"avg_annual_wage,omitempty" yaml:"avg_annual_wage,omitempty"`
	MgmtFeePerWSE       any       `json:"mgmt_fee_per_wse,omitempty" yaml:"mgmt_fee_per_wse,omitempty"`
	ConversionRate      any       `json:"conversion_rate,omitempty" yaml:"conversion_rate,omitempty"`
	CustomCommissionPct any       `json:"custom_commission_pct,omitempty" yaml:"custom_commission_pct,omitempty"`
	BookPortionPct      any       `json:"book_portion_pct,omitempty" yaml:"book_portion_pct,omitempty"`
}
