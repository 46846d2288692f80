package config

import (
	"github.com/kilianp07/wellplan/core/constraint"
)

// BoundConfig is one limit value, optionally pinned to a year.
type BoundConfig struct {
	Value float64 `json:"value"`
	// Year restricts the bound to one calendar year; zero means general.
	Year int `json:"year"`
}

// ConstraintsConfig declares the hard limits applied to candidates.
type ConstraintsConfig struct {
	Capex []BoundConfig `json:"capex"`
	Oil   []BoundConfig `json:"oil"`
}

// Build assembles the configured constraints. Sections without bounds are
// omitted.
func (c ConstraintsConfig) Build() []constraint.Constraint {
	var out []constraint.Constraint
	if len(c.Capex) > 0 {
		out = append(out, constraint.NewCapex(bounds(c.Capex)...))
	}
	if len(c.Oil) > 0 {
		out = append(out, constraint.NewOil(bounds(c.Oil)...))
	}
	return out
}

func bounds(cfgs []BoundConfig) []constraint.Bound {
	out := make([]constraint.Bound, 0, len(cfgs))
	for _, b := range cfgs {
		out = append(out, constraint.Bound{Value: b.Value, Year: b.Year})
	}
	return out
}
