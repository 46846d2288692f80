package optimize

import (
	"math/rand"
	"testing"
	"time"

	"github.com/kilianp07/wellplan/core/model"
	"github.com/kilianp07/wellplan/core/teams"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedPlan(manager *teams.Manager, names ...string) *model.Plan {
	plan := model.NewPlan()
	for _, name := range names {
		well := model.Well{Name: name, Cluster: "K1", WellType: "ГС", OilRate: 10}
		ctx := model.NewWellPlanContext(well, date(2025, 1, 1), date(2030, 1, 1))
		if err := manager.GetAssignments(ctx); err != nil {
			panic(err)
		}
		manager.Assign(ctx)
		ctx.SetCost(float64(len(name)) * 100)
		plan.AddContext(ctx)
	}
	return plan
}

func newManager() *teams.Manager {
	pool := model.NewTeamPool()
	pool.AddTeams(2, model.TaskDrilling)
	return teams.NewManager(pool)
}

func TestOptimizeKeepsWellSet(t *testing.T) {
	manager := newManager()
	plan := seedPlan(manager, "101", "102", "103")

	a := NewAnnealer(rand.New(rand.NewSource(7)))
	a.InitialTemp = 10
	a.Iterations = 5

	best := a.Optimize(plan, manager)
	if len(best.WellPlans) != len(plan.WellPlans) {
		t.Fatalf("well count changed: %d -> %d", len(plan.WellPlans), len(best.WellPlans))
	}
	seen := make(map[string]bool)
	for _, wp := range best.WellPlans {
		seen[wp.Well.Name] = true
	}
	for _, wp := range plan.WellPlans {
		if !seen[wp.Well.Name] {
			t.Errorf("well %s lost during refinement", wp.Well.Name)
		}
	}
}

func TestOptimizeNeverWorsensProfit(t *testing.T) {
	manager := newManager()
	plan := seedPlan(manager, "101", "102")
	before := plan.TotalProfit()

	a := NewAnnealer(rand.New(rand.NewSource(7)))
	a.InitialTemp = 10
	a.Iterations = 5

	best := a.Optimize(plan, manager)
	if best.TotalProfit() < before {
		t.Errorf("best profit %v below initial %v", best.TotalProfit(), before)
	}
}

func TestOptimizeDoesNotMutateInput(t *testing.T) {
	manager := newManager()
	plan := seedPlan(manager, "101", "102")
	firstBefore := plan.WellPlans[0].Well.Name
	entriesBefore := append([]model.ScheduleEntry(nil), plan.WellPlans[0].Entries...)

	a := NewAnnealer(rand.New(rand.NewSource(7)))
	a.InitialTemp = 10
	a.Iterations = 5
	a.Optimize(plan, manager)

	if plan.WellPlans[0].Well.Name != firstBefore {
		t.Error("input plan order changed")
	}
	for i, e := range plan.WellPlans[0].Entries {
		if !e.Start.Equal(entriesBefore[i].Start) || !e.End.Equal(entriesBefore[i].End) {
			t.Error("input plan entries changed")
		}
	}
}
