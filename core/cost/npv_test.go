package cost

import (
	"math"
	"testing"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

type flatCapex struct{ value float64 }

func (c flatCapex) Compute(model.Well) (float64, error) { return c.value, nil }

type zeroOpex struct{}

func (zeroOpex) Compute(oil, water []float64) []float64 { return make([]float64, len(oil)) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNPVCompute(t *testing.T) {
	start := date(2025, 1, 1)
	fn := NewNPV(10, start, flatCapex{value: 1000}, zeroOpex{})

	ctx := model.NewWellPlanContext(model.Well{Name: "101"}, start, start.AddDate(10, 0, 0))
	end := start.Add(365 * 24 * time.Hour)
	ctx.Entries = append(ctx.Entries, model.ScheduleEntry{
		Task:       model.TaskDrilling,
		Start:      start,
		End:        end,
		TravelTime: 36 * time.Hour,
	})
	ctx.OilProfile = []float64{100, 200}
	ctx.LiqProfile = []float64{100, 200}

	if err := fn.Compute(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.Cost == nil {
		t.Fatal("cost not set")
	}

	// Launch is exactly one year past the project start.
	cashFlow := 1000/math.Pow(1.125, 1) + 2000/math.Pow(1.125, 1+1.0/12)
	capex := 1000 / math.Pow(1.125, 1)
	// 36 hours truncate to one travel day.
	travel := 1 * fn.TravelCostPerDay
	want := cashFlow - capex - travel

	if math.Abs(*ctx.Cost-want) > 1e-6 {
		t.Errorf("cost = %v, want %v", *ctx.Cost, want)
	}
	if math.Abs(ctx.Metadata["cash_flow"]-cashFlow) > 1e-6 {
		t.Errorf("cash_flow = %v", ctx.Metadata["cash_flow"])
	}
	if math.Abs(ctx.Metadata["capex"]-capex) > 1e-6 {
		t.Errorf("capex = %v", ctx.Metadata["capex"])
	}
	if ctx.Metadata["travel_cost"] != travel {
		t.Errorf("travel_cost = %v", ctx.Metadata["travel_cost"])
	}
}

func TestNPVDrillTeamPenalty(t *testing.T) {
	start := date(2025, 1, 1)
	fn := NewNPV(10, start, flatCapex{}, zeroOpex{})

	ctx := model.NewWellPlanContext(model.Well{Name: "101"}, start, start.AddDate(10, 0, 0))
	ctx.Entries = append(ctx.Entries, model.ScheduleEntry{
		Task:       model.TaskDrilling,
		End:        start.Add(30 * 24 * time.Hour),
		TravelTime: 2 * 24 * time.Hour,
	})
	ctx.Metadata["team_count_drilling"] = 3

	if err := fn.Compute(ctx); err != nil {
		t.Fatal(err)
	}
	want := 3 * 2 * fn.TravelCostPerDay
	if ctx.Metadata["drill_team_penalty"] != want {
		t.Errorf("penalty = %v, want %v", ctx.Metadata["drill_team_penalty"], want)
	}
}

func TestNPVNoDrillingEntry(t *testing.T) {
	start := date(2025, 1, 1)
	fn := NewNPV(10, start, flatCapex{}, zeroOpex{})

	ctx := model.NewWellPlanContext(model.Well{Name: "101"}, start, start.AddDate(10, 0, 0))
	ctx.Entries = append(ctx.Entries, model.ScheduleEntry{
		Task:       model.TaskWorkover,
		End:        start.Add(20 * 24 * time.Hour),
		TravelTime: 5 * 24 * time.Hour,
	})

	if err := fn.Compute(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.Metadata["travel_cost"] != 0 {
		t.Errorf("travel_cost = %v, want 0 without drilling", ctx.Metadata["travel_cost"])
	}
}
