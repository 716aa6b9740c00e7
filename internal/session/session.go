// Package session holds the current input snapshot and its metrics.
// Every update computes a complete new State and swaps it in, so a reader
// always sees inputs and metrics from the same snapshot.
package session

import (
	"fmt"
	"sync/atomic"

	"blended-fee-engine/internal/calc"
	"blended-fee-engine/internal/model"
	"blended-fee-engine/internal/mutations"
)

// State is immutable once published.
type State struct {
	Inputs   model.Inputs
	Metrics  model.Metrics
	Revision uint64
}

type Session struct {
	current atomic.Pointer[State]
}

// New starts a session at the given snapshot.
func New(initial model.Inputs) *Session {
	s := &Session{}
	s.current.Store(newState(initial.Clone(), 0))
	return s
}

func newState(in model.Inputs, rev uint64) *State {
	return &State{Inputs: in, Metrics: calc.Compute(in), Revision: rev}
}

// Current returns the latest published state.
func (s *Session) Current() *State {
	return s.current.Load()
}

// Update derives the next snapshot with fn, recomputes every metric and
// publishes the result.
func (s *Session) Update(fn func(model.Inputs) model.Inputs) *State {
	prev := s.current.Load()
	next := newState(fn(prev.Inputs), prev.Revision+1)
	s.current.Store(next)
	return next
}

// Apply runs a named mutation. An unknown name yields a CRITICAL message
// and leaves the state untouched; any other messages are warnings and the
// mutation is applied.
func (s *Session) Apply(m *model.Mutation) (prev, next *State, msgs []model.CalculationMessage) {
	prev = s.current.Load()

	h, ok := mutations.Get(m.MutationDefinitionName)
	if !ok {
		return prev, prev, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_MUTATION",
			Message: fmt.Sprintf("Unknown mutation: %s", m.MutationDefinitionName),
		}}
	}

	msgs = h.Validate(prev.Inputs, m)
	next = s.Update(func(in model.Inputs) model.Inputs {
		return h.Apply(in, m)
	})
	return prev, next, msgs
}
