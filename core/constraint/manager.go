package constraint

import (
	"sort"

	"github.com/kilianp07/wellplan/core/model"
)

// Manager evaluates an ordered set of constraints against a partial plan and
// knows the constraint-boundary years used for time backoff.
type Manager struct {
	constraints []Constraint
	years       []int
}

// NewManager wraps the given constraints.
func NewManager(constraints ...Constraint) *Manager {
	m := &Manager{constraints: constraints}
	seen := make(map[int]bool)
	for _, c := range constraints {
		for _, b := range c.Bounds() {
			if b.Year != 0 && !seen[b.Year] {
				seen[b.Year] = true
				m.years = append(m.years, b.Year)
			}
		}
	}
	sort.Ints(m.years)
	return m
}

// Violated reports whether any constraint rejects the candidate.
func (m *Manager) Violated(plan *model.Plan, ctx *model.WellPlanContext) bool {
	for _, c := range m.constraints {
		if c.Violated(plan, ctx) {
			return true
		}
	}
	return false
}

// NextBoundaryYear returns the first constraint-bound year strictly after the
// given one. ok is false when no later boundary exists.
func (m *Manager) NextBoundaryYear(after int) (int, bool) {
	for _, y := range m.years {
		if y > after {
			return y, true
		}
	}
	return 0, false
}
