// Package statemachine validates status changes against fixed transition tables.
package statemachine

import (
	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/pkg/metrics"
)

// Machine holds the allowed next states for each state of one entity.
type Machine[S ~string] struct {
	entity  string
	allowed map[S][]S
}

func New[S ~string](entity string, allowed map[S][]S) *Machine[S] {
	return &Machine[S]{entity: entity, allowed: allowed}
}

// Can reports whether from -> to is in the table.
func (m *Machine[S]) Can(from, to S) bool {
	for _, next := range m.allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Check returns a Conflict for transitions missing from the table.
func (m *Machine[S]) Check(from, to S) error {
	if !m.Can(from, to) {
		return apperr.Conflict("transition not permitted: from %s to %s", from, to)
	}
	return nil
}

// Transition checks the move and counts it once accepted. The caller applies
// side effects and persists the new state.
func (m *Machine[S]) Transition(from, to S) error {
	if err := m.Check(from, to); err != nil {
		return err
	}
	metrics.ObserveTransition(m.entity, string(from), string(to))
	return nil
}

// Next lists the states reachable from s.
func (m *Machine[S]) Next(s S) []S {
	return append([]S(nil), m.allowed[s]...)
}

// Terminal reports whether s has no outgoing transitions.
func (m *Machine[S]) Terminal(s S) bool {
	return len(m.allowed[s]) == 0
}
