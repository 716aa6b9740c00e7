package mutations

import (
	"math"

	json "github.com/goccy/go-json"

	"blended-fee-engine/internal/coerce"
	"blended-fee-engine/internal/model"
)

// decodeProps reads mutation properties into v. Missing properties are
// not an error; a body that is not a JSON object is.
func decodeProps(mutation *model.Mutation, v any) error {
	if len(mutation.MutationProperties) == 0 || string(mutation.MutationProperties) == "null" {
		return nil
	}
	return json.Unmarshal(mutation.MutationProperties, v)
}

// index coerces a user-supplied position; anything unreadable is -1.
func index(v any) int {
	f := coerce.Number(v, -1)
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return -1
	}
	return int(f)
}

func warning(code, msg string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    code,
		Message: msg,
	}
}

func invalidProps(err error) []model.CalculationMessage {
	return []model.CalculationMessage{
		warning("INVALID_PROPERTIES", "Mutation properties could not be read: "+err.Error()),
	}
}
