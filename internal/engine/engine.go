package engine

import (
	"time"

	"github.com/google/uuid"

	"blended-fee-engine/internal/format"
	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/jsonpatch"
	"blended-fee-engine/internal/model"
	"blended-fee-engine/internal/session"
)

// Process applies the request's mutations in order to the initial
// snapshot, recomputing every metric after each one. A CRITICAL message
// stops processing; the end situation is then the last good state.
func Process(req *model.CalculationRequest, f *format.Formatter) *model.CalculationResponse {
	start := time.Now()
	if f == nil {
		f = format.Default()
	}

	sess := session.New(inputs.Normalize(req.InitialInputs))
	initial := sess.Current()

	allMessages := []model.CalculationMessage{}
	processedMutations := []model.ProcessedMutation{}
	outcome := model.OutcomeSuccess

	lastMutationID := ""
	lastMutationIndex := -1

	for i := range req.CalculationInstructions.Mutations {
		mut := &req.CalculationInstructions.Mutations[i]

		prev, next, msgs := sess.Apply(mut)

		var msgIndexes []int
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			msgIndexes = append(msgIndexes, m.ID)
		}

		processed := model.ProcessedMutation{
			Mutation:                  *mut,
			CalculationMessageIndexes: msgIndexes,
		}

		if model.HasCritical(msgs) {
			processedMutations = append(processedMutations, processed)
			outcome = model.OutcomeFailure
			break
		}

		// a patch that cannot be encoded is left out; the end situation
		// still carries the full metrics
		if ops, err := jsonpatch.Between(prev.Metrics, next.Metrics); err == nil {
			processed.MetricsPatch, _ = jsonpatch.Marshal(ops)
		}
		processedMutations = append(processedMutations, processed)

		lastMutationID = mut.MutationID
		lastMutationIndex = i
	}

	end := sess.Current()
	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			ScenarioID:             req.ScenarioID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:  allMessages,
			Mutations: processedMutations,
			EndSituation: model.SituationEnvelope{
				MutationID:    lastMutationID,
				MutationIndex: lastMutationIndex,
				Situation:     situation(end, f),
			},
			InitialSituation: situation(initial, f),
		},
	}
}

// Evaluate computes a single snapshot with no mutations.
func Evaluate(in model.Inputs, f *format.Formatter) model.Situation {
	if f == nil {
		f = format.Default()
	}
	return situation(session.New(in).Current(), f)
}

func situation(s *session.State, f *format.Formatter) model.Situation {
	return model.Situation{
		Inputs:    s.Inputs,
		Metrics:   s.Metrics,
		Formatted: f.Metrics(s.Metrics),
	}
}
