package mutations

import "blended-fee-engine/internal/model"

// MutationHandler defines the contract for every control mutation.
// Validate reports why a mutation would leave the snapshot unchanged;
// Apply returns the next snapshot and never modifies state.
type MutationHandler interface {
	Validate(state model.Inputs, mutation *model.Mutation) []model.CalculationMessage
	Apply(state model.Inputs, mutation *model.Mutation) model.Inputs
}
