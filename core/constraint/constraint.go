package constraint

import (
	"github.com/kilianp07/wellplan/core/model"
)

// Bound limits a constrained quantity. Year 0 makes the bound general, i.e.
// applicable to every year.
type Bound struct {
	Value float64
	Year  int
}

// Constraint rejects candidates that would push a partial plan past a hard
// limit.
type Constraint interface {
	// Violated reports whether adding ctx to plan breaks the constraint.
	Violated(plan *model.Plan, ctx *model.WellPlanContext) bool
	// Bounds exposes the configured bounds.
	Bounds() []Bound
}

// applicableBound picks the bound for a year: the minimum of the
// year-specific bound and the general bound, when either exists.
func applicableBound(bounds []Bound, year int) (Bound, bool) {
	var specific, general *Bound
	for i := range bounds {
		b := bounds[i]
		switch {
		case b.Year == year:
			if specific == nil || b.Value < specific.Value {
				specific = &bounds[i]
			}
		case b.Year == 0:
			if general == nil || b.Value < general.Value {
				general = &bounds[i]
			}
		}
	}
	if specific != nil && general != nil {
		if specific.Value <= general.Value {
			return *specific, true
		}
		return *general, true
	}
	if specific != nil {
		return *specific, true
	}
	if general != nil {
		return *general, true
	}
	return Bound{}, false
}

// Capex caps the discounted capital expenditure committed per launch year.
type Capex struct {
	bounds []Bound
}

// NewCapex creates a capex constraint with the given bounds.
func NewCapex(bounds ...Bound) Capex {
	return Capex{bounds: bounds}
}

func (c Capex) Bounds() []Bound { return c.bounds }

func (c Capex) Violated(plan *model.Plan, ctx *model.WellPlanContext) bool {
	launch, ok := ctx.LaunchDate()
	if !ok {
		return false
	}
	capex := ctx.Metadata["capex"]
	if capex == 0 {
		return false
	}
	bound, ok := applicableBound(c.bounds, launch.Year())
	if !ok {
		return false
	}
	planned := plan.CapexPerYear()[launch.Year()]
	return planned+capex > bound.Value
}

// Oil caps the oil production allowed per calendar year.
type Oil struct {
	bounds []Bound
}

// NewOil creates an oil production constraint with the given bounds.
func NewOil(bounds ...Bound) Oil {
	return Oil{bounds: bounds}
}

func (c Oil) Bounds() []Bound { return c.bounds }

func (c Oil) Violated(plan *model.Plan, ctx *model.WellPlanContext) bool {
	launch, ok := ctx.LaunchDate()
	if !ok {
		return false
	}
	perYear := make(map[int]float64)
	for _, yv := range model.MonthlyToYearly(launch, ctx.OilProfile) {
		perYear[yv.Year] += yv.Value
	}
	planned := plan.OilProductionPerYear()
	for year, oil := range perYear {
		bound, ok := applicableBound(c.bounds, year)
		if !ok {
			continue
		}
		if planned[year]+oil > bound.Value {
			return true
		}
	}
	return false
}
