package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Plan is an ordered, append-only collection of accepted well contexts.
type Plan struct {
	ID        uuid.UUID
	WellPlans []*WellPlanContext
}

// NewPlan returns an empty plan with a fresh identity.
func NewPlan() *Plan {
	return &Plan{ID: uuid.New()}
}

// AddContext appends an accepted context. The plan takes ownership.
func (p *Plan) AddContext(ctx *WellPlanContext) {
	p.WellPlans = append(p.WellPlans, ctx)
}

// TotalProfit sums the non-nil costs of all well plans.
func (p *Plan) TotalProfit() float64 {
	total := 0.0
	for _, wp := range p.WellPlans {
		if wp.Cost != nil {
			total += *wp.Cost
		}
	}
	return total
}

// MeanWellCost averages the non-nil costs, 0 when none are set.
func (p *Plan) MeanWellCost() float64 {
	total, n := 0.0, 0
	for _, wp := range p.WellPlans {
		if wp.Cost != nil {
			total += *wp.Cost
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// WellCost looks up a planned well's cost by name. The cost may be nil when
// no cost function has run for it.
func (p *Plan) WellCost(name string) (*float64, error) {
	for _, wp := range p.WellPlans {
		if wp.Well.Name == name {
			return wp.Cost, nil
		}
	}
	return nil, fmt.Errorf("well %q not found in plan", name)
}

// Entries flattens every schedule entry of the plan.
func (p *Plan) Entries() []ScheduleEntry {
	var entries []ScheduleEntry
	for _, wp := range p.WellPlans {
		entries = append(entries, wp.Entries...)
	}
	return entries
}

// OilProductionForDate sums cumulative oil production of all wells up to date.
func (p *Plan) OilProductionForDate(date time.Time) float64 {
	total := 0.0
	for _, wp := range p.WellPlans {
		total += wp.OilProductionForDate(date)
	}
	return total
}

// LiquidProductionForDate sums cumulative liquid production up to date.
func (p *Plan) LiquidProductionForDate(date time.Time) float64 {
	total := 0.0
	for _, wp := range p.WellPlans {
		total += wp.LiquidProductionForDate(date)
	}
	return total
}

// YearValue pairs a calendar year with an aggregated amount.
type YearValue struct {
	Year  int
	Value float64
}

// MonthValue pairs a month start with an aggregated amount.
type MonthValue struct {
	Date  time.Time
	Value float64
}

// MonthlyToYearly buckets a monthly profile starting at launch into calendar
// years.
func MonthlyToYearly(launch time.Time, profile []float64) []YearValue {
	out := make([]YearValue, 0, len(profile))
	year, month := launch.Year(), int(launch.Month())
	for i, v := range profile {
		out = append(out, YearValue{Year: year + (month+i-1)/12, Value: v})
	}
	return out
}

func monthlyDates(launch time.Time, profile []float64) []MonthValue {
	out := make([]MonthValue, 0, len(profile))
	year, month := launch.Year(), int(launch.Month())
	for _, v := range profile {
		out = append(out, MonthValue{Date: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), Value: v})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return out
}

// aggregateYearly folds per-well (year, value) pairs. Wells without a launch
// date carry no schedule and are skipped.
func (p *Plan) aggregateYearly(extract func(wp *WellPlanContext, launch time.Time) []YearValue) map[int]float64 {
	agg := make(map[int]float64)
	for _, wp := range p.WellPlans {
		launch, ok := wp.LaunchDate()
		if !ok {
			continue
		}
		for _, yv := range extract(wp, launch) {
			agg[yv.Year] += yv.Value
		}
	}
	return agg
}

func (p *Plan) aggregateMonthly(extract func(wp *WellPlanContext, launch time.Time) []MonthValue) map[time.Time]float64 {
	agg := make(map[time.Time]float64)
	for _, wp := range p.WellPlans {
		launch, ok := wp.LaunchDate()
		if !ok {
			continue
		}
		for _, mv := range extract(wp, launch) {
			agg[mv.Date] += mv.Value
		}
	}
	return agg
}

// OilProductionPerYear aggregates oil production by calendar year.
func (p *Plan) OilProductionPerYear() map[int]float64 {
	return p.aggregateYearly(func(wp *WellPlanContext, launch time.Time) []YearValue {
		return MonthlyToYearly(launch, wp.OilProfile)
	})
}

// OilProductionPerYearForNewWells keeps only production from each well's
// launch year.
func (p *Plan) OilProductionPerYearForNewWells() map[int]float64 {
	return p.aggregateYearly(func(wp *WellPlanContext, launch time.Time) []YearValue {
		var kept []YearValue
		for _, yv := range MonthlyToYearly(launch, wp.OilProfile) {
			if yv.Year == launch.Year() {
				kept = append(kept, yv)
			}
		}
		return kept
	})
}

// OilProductionPerYearForExistingWells keeps production from years after each
// well's launch year.
func (p *Plan) OilProductionPerYearForExistingWells() map[int]float64 {
	return p.aggregateYearly(func(wp *WellPlanContext, launch time.Time) []YearValue {
		var kept []YearValue
		for _, yv := range MonthlyToYearly(launch, wp.OilProfile) {
			if yv.Year > launch.Year() {
				kept = append(kept, yv)
			}
		}
		return kept
	})
}

// WellStartsPerYear counts wells launched per calendar year.
func (p *Plan) WellStartsPerYear() map[int]int {
	counts := p.aggregateYearly(func(wp *WellPlanContext, launch time.Time) []YearValue {
		return []YearValue{{Year: launch.Year(), Value: 1}}
	})
	out := make(map[int]int, len(counts))
	for y, v := range counts {
		out[y] = int(v)
	}
	return out
}

// MeanOilProductionPerYear divides yearly production by the number of wells
// launched that year.
func (p *Plan) MeanOilProductionPerYear() map[int]float64 {
	totals := p.OilProductionPerYear()
	counts := p.WellStartsPerYear()
	mean := make(map[int]float64)
	for year, n := range counts {
		if n > 0 {
			if total, ok := totals[year]; ok {
				mean[year] = total / float64(n)
			}
		}
	}
	return mean
}

// CapexPerYear aggregates discounted capital expenditure by launch year.
func (p *Plan) CapexPerYear() map[int]float64 {
	return p.aggregateYearly(func(wp *WellPlanContext, launch time.Time) []YearValue {
		return []YearValue{{Year: launch.Year(), Value: wp.Metadata["capex"]}}
	})
}

// OilProductionPerMonth aggregates oil production by month start.
func (p *Plan) OilProductionPerMonth() map[time.Time]float64 {
	return p.aggregateMonthly(func(wp *WellPlanContext, launch time.Time) []MonthValue {
		return monthlyDates(launch, wp.OilProfile)
	})
}

// OilProductionPerMonthForNewWells keeps months within each well's launch
// year.
func (p *Plan) OilProductionPerMonthForNewWells() map[time.Time]float64 {
	return p.aggregateMonthly(func(wp *WellPlanContext, launch time.Time) []MonthValue {
		var kept []MonthValue
		for _, mv := range monthlyDates(launch, wp.OilProfile) {
			if mv.Date.Year() == launch.Year() {
				kept = append(kept, mv)
			}
		}
		return kept
	})
}

// OilProductionPerMonthForExistingWells keeps months after each well's launch
// year.
func (p *Plan) OilProductionPerMonthForExistingWells() map[time.Time]float64 {
	return p.aggregateMonthly(func(wp *WellPlanContext, launch time.Time) []MonthValue {
		var kept []MonthValue
		for _, mv := range monthlyDates(launch, wp.OilProfile) {
			if mv.Date.Year() > launch.Year() {
				kept = append(kept, mv)
			}
		}
		return kept
	})
}

// Clone deep-copies the plan, keeping the same identity. Contexts are copied
// so the clone can be mutated freely.
func (p *Plan) Clone() *Plan {
	cp := &Plan{ID: p.ID, WellPlans: make([]*WellPlanContext, len(p.WellPlans))}
	for i, wp := range p.WellPlans {
		cp.WellPlans[i] = wp.Clone()
	}
	return cp
}
