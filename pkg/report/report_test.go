package report

import (
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

func plannedContext(name string, launch time.Time, cost float64, oil []float64) *model.WellPlanContext {
	ctx := model.NewWellPlanContext(model.Well{Name: name, Cluster: "K1"}, launch.AddDate(0, -1, 0), launch.AddDate(10, 0, 0))
	ctx.Entries = append(ctx.Entries, model.ScheduleEntry{Task: model.TaskDrilling, End: launch})
	ctx.SetCost(cost)
	ctx.OilProfile = oil
	return ctx
}

func TestBuild(t *testing.T) {
	plan := model.NewPlan()
	plan.AddContext(plannedContext("101", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 100, []float64{10}))
	plan.AddContext(plannedContext("102", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 300, []float64{20}))

	r := Build(plan)
	if r.Wells != 2 {
		t.Errorf("wells = %d", r.Wells)
	}
	if r.TotalProfit != 400 {
		t.Errorf("profit = %v", r.TotalProfit)
	}
	if r.MeanWellCost != 200 {
		t.Errorf("mean cost = %v", r.MeanWellCost)
	}
	if r.CostStdDev == 0 {
		t.Error("stddev should be positive for differing costs")
	}
	if r.OilPerYear[2025] != 30 {
		t.Errorf("oil 2025 = %v", r.OilPerYear[2025])
	}
	if r.StartsPerYear[2025] != 2 {
		t.Errorf("starts 2025 = %v", r.StartsPerYear[2025])
	}
}

func TestBuildEmptyPlan(t *testing.T) {
	r := Build(model.NewPlan())
	if r.Wells != 0 || r.MeanWellCost != 0 || r.CostStdDev != 0 {
		t.Errorf("report = %+v", r)
	}
}

func TestWriteText(t *testing.T) {
	plan := model.NewPlan()
	plan.AddContext(plannedContext("101", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 100, []float64{10}))

	var sb strings.Builder
	if err := Build(plan).WriteText(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "wells planned:   1") {
		t.Errorf("output missing well count:\n%s", out)
	}
	if !strings.Contains(out, "2025") {
		t.Errorf("output missing year row:\n%s", out)
	}
}
