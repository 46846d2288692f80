package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextAvailableDate(t *testing.T) {
	ctx := NewWellPlanContext(Well{Name: "101"}, date(2025, 1, 1), date(2030, 1, 1))
	if got := ctx.NextAvailableDate(); !got.Equal(date(2025, 1, 1)) {
		t.Errorf("empty context: next = %v", got)
	}

	ctx.Entries = append(ctx.Entries,
		ScheduleEntry{Task: TaskDrilling, Start: date(2025, 1, 1), End: date(2025, 1, 31)},
		ScheduleEntry{Task: TaskWorkover, Start: date(2025, 1, 31), End: date(2025, 2, 20)},
	)
	if got := ctx.NextAvailableDate(); !got.Equal(date(2025, 2, 20)) {
		t.Errorf("next = %v, want 2025-02-20", got)
	}
}

func TestLaunchDate(t *testing.T) {
	ctx := NewWellPlanContext(Well{Name: "101"}, date(2025, 1, 1), date(2030, 1, 1))
	if _, ok := ctx.LaunchDate(); ok {
		t.Fatal("launch date for empty context")
	}
	ctx.Entries = append(ctx.Entries,
		ScheduleEntry{Task: TaskDrilling, End: date(2025, 1, 31)},
	)
	launch, ok := ctx.LaunchDate()
	if !ok || !launch.Equal(date(2025, 1, 31)) {
		t.Errorf("launch = %v, ok = %v", launch, ok)
	}
}

func TestProductionForDate(t *testing.T) {
	ctx := NewWellPlanContext(Well{Name: "101"}, date(2025, 3, 15), date(2030, 1, 1))
	ctx.OilProfile = []float64{100, 200, 300}

	if got := ctx.OilProductionForDate(date(2025, 1, 1)); got != 0 {
		t.Errorf("before start: %v", got)
	}
	if got := ctx.OilProductionForDate(date(2025, 4, 1)); got != 300 {
		t.Errorf("two months in: %v, want 300", got)
	}
	// Past the profile end the whole series is counted.
	if got := ctx.OilProductionForDate(date(2026, 1, 1)); got != 600 {
		t.Errorf("past profile: %v, want 600", got)
	}
}

func TestContextClone(t *testing.T) {
	ctx := NewWellPlanContext(Well{Name: "101"}, date(2025, 1, 1), date(2030, 1, 1))
	ctx.Entries = append(ctx.Entries, ScheduleEntry{Task: TaskDrilling, End: date(2025, 1, 31)})
	ctx.OilProfile = []float64{100}
	ctx.SetCost(42)
	ctx.Metadata["capex"] = 7

	cp := ctx.Clone()
	cp.Entries[0].End = date(2026, 1, 1)
	cp.OilProfile[0] = 1
	cp.SetCost(0)
	cp.Metadata["capex"] = 0

	if !ctx.Entries[0].End.Equal(date(2025, 1, 31)) {
		t.Error("clone mutated original entries")
	}
	if ctx.OilProfile[0] != 100 {
		t.Error("clone mutated original profile")
	}
	if *ctx.Cost != 42 {
		t.Error("clone mutated original cost")
	}
	if ctx.Metadata["capex"] != 7 {
		t.Error("clone mutated original metadata")
	}
}
