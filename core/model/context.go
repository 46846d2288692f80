package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is one committed task window for a well.
type ScheduleEntry struct {
	Task       Task
	TeamID     uuid.UUID
	Start      time.Time
	End        time.Time
	TravelTime time.Duration
}

// WellPlanContext is the mutable working unit for one well during plan
// construction. A context is created fresh per candidate round, discarded if
// rejected, and becomes part of the plan once accepted. It is owned by
// exactly one collection at a time.
type WellPlanContext struct {
	Well    Well
	Start   time.Time
	End     time.Time
	Entries []ScheduleEntry

	// Cost is nil until a cost function has run.
	Cost *float64

	// Monthly production totals in tons, aligned to NextAvailableDate.
	OilProfile []float64
	LiqProfile []float64

	// Metadata holds derived figures: travel_cost, cash_flow, capex,
	// drill_team_penalty, applied_risk and team_count_* entries.
	Metadata map[string]float64
}

// NewWellPlanContext creates a context for the given scheduling window.
func NewWellPlanContext(well Well, start, end time.Time) *WellPlanContext {
	return &WellPlanContext{
		Well:     well,
		Start:    start,
		End:      end,
		Metadata: make(map[string]float64),
	}
}

// NextAvailableDate is the moment the well is free of scheduled work: the
// latest entry end, or the context start when nothing is scheduled yet.
func (c *WellPlanContext) NextAvailableDate() time.Time {
	next := c.Start
	for _, e := range c.Entries {
		if e.End.After(next) {
			next = e.End
		}
	}
	return next
}

// EntryByTask returns the first entry for the task, if any.
func (c *WellPlanContext) EntryByTask(task Task) (ScheduleEntry, bool) {
	for _, e := range c.Entries {
		if e.Task == task {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

// LaunchDate is the end of the last scheduled entry; production starts right
// after it. ok is false while the well has no entries.
func (c *WellPlanContext) LaunchDate() (time.Time, bool) {
	if len(c.Entries) == 0 {
		return time.Time{}, false
	}
	launch := c.Entries[0].End
	for _, e := range c.Entries[1:] {
		if e.End.After(launch) {
			launch = e.End
		}
	}
	return launch, true
}

// SetCost stores the computed cost.
func (c *WellPlanContext) SetCost(v float64) { c.Cost = &v }

func (c *WellPlanContext) productionForDate(date time.Time, profile []float64) float64 {
	wellStart := c.NextAvailableDate()
	if date.Before(wellStart) {
		return 0
	}
	n := (date.Year()-wellStart.Year())*12 + int(date.Month()) - int(wellStart.Month()) + 1
	if n > len(profile) {
		n = len(profile)
	}
	total := 0.0
	for _, v := range profile[:n] {
		total += v
	}
	return total
}

// OilProductionForDate returns cumulative oil production up to and including
// the month of date.
func (c *WellPlanContext) OilProductionForDate(date time.Time) float64 {
	return c.productionForDate(date, c.OilProfile)
}

// LiquidProductionForDate returns cumulative liquid production up to and
// including the month of date.
func (c *WellPlanContext) LiquidProductionForDate(date time.Time) float64 {
	return c.productionForDate(date, c.LiqProfile)
}

// Clone deep-copies the context so that mutations on the copy never reach the
// original. Used by the whole-plan optimizer.
func (c *WellPlanContext) Clone() *WellPlanContext {
	cp := &WellPlanContext{
		Well:       c.Well,
		Start:      c.Start,
		End:        c.End,
		Entries:    append([]ScheduleEntry(nil), c.Entries...),
		OilProfile: append([]float64(nil), c.OilProfile...),
		LiqProfile: append([]float64(nil), c.LiqProfile...),
		Metadata:   make(map[string]float64, len(c.Metadata)),
	}
	if c.Cost != nil {
		cost := *c.Cost
		cp.Cost = &cost
	}
	for k, v := range c.Metadata {
		cp.Metadata[k] = v
	}
	return cp
}
