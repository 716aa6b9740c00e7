package model

import json "github.com/goccy/go-json"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	ScenarioID             string `json:"scenario_id,omitempty"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages         []CalculationMessage `json:"messages"`
	Mutations        []ProcessedMutation  `json:"mutations"`
	EndSituation     SituationEnvelope    `json:"end_situation"`
	InitialSituation Situation            `json:"initial_situation"`
}

type ProcessedMutation struct {
	Mutation                  Mutation        `json:"mutation"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	MetricsPatch              json.RawMessage `json:"metrics_patch,omitempty"`
}

// Situation pairs a snapshot with the metrics computed from it.
type Situation struct {
	Inputs    Inputs           `json:"inputs"`
	Metrics   Metrics          `json:"metrics"`
	Formatted FormattedMetrics `json:"formatted"`
}

type SituationEnvelope struct {
	MutationID    string    `json:"mutation_id,omitempty"`
	MutationIndex int       `json:"mutation_index"`
	Situation     Situation `json:"situation"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
