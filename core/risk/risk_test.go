package risk

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

func newContext(cluster string, oil []float64) *model.WellPlanContext {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := model.NewWellPlanContext(model.Well{Name: "101", Cluster: cluster}, start, start.AddDate(5, 0, 0))
	ctx.OilProfile = oil
	return ctx
}

func TestDefineRiskAlwaysTriggers(t *testing.T) {
	s := NewClusterRandom(1, 0.25, rand.New(rand.NewSource(1)))

	ctx := newContext("K1", []float64{100, 200})
	s.DefineRisk(ctx)

	if ctx.OilProfile[0] != 75 || ctx.OilProfile[1] != 150 {
		t.Errorf("profile = %v, want scaled by 0.75", ctx.OilProfile)
	}
	if ctx.Metadata["applied_risk"] != 0.25 {
		t.Errorf("applied_risk = %v", ctx.Metadata["applied_risk"])
	}
}

func TestDefineRiskNeverTriggers(t *testing.T) {
	s := NewClusterRandom(0, 0.25, rand.New(rand.NewSource(1)))

	ctx := newContext("K1", []float64{100})
	s.DefineRisk(ctx)
	if ctx.OilProfile[0] != 100 {
		t.Errorf("profile changed without a trigger: %v", ctx.OilProfile)
	}
}

func TestRiskAccumulatesPerCluster(t *testing.T) {
	s := NewClusterRandom(1, 0.6, rand.New(rand.NewSource(1)))

	first := newContext("K1", []float64{100})
	s.DefineRisk(first)
	if first.OilProfile[0] != 40 {
		t.Errorf("first hit = %v, want 40", first.OilProfile[0])
	}

	// The second hit caps the cluster at a total loss.
	second := newContext("K1", []float64{100})
	s.DefineRisk(second)
	if math.Abs(second.OilProfile[0]) > 1e-9 {
		t.Errorf("capped reduction = %v, want 0", second.OilProfile[0])
	}

	// Other clusters are untouched until hit themselves.
	other := newContext("K2", []float64{100})
	s.ApplyRisk(other)
	if other.OilProfile[0] != 100 {
		t.Errorf("other cluster scaled: %v", other.OilProfile[0])
	}
}

func TestApplyRiskInheritsClusterReduction(t *testing.T) {
	s := NewClusterRandom(1, 0.5, rand.New(rand.NewSource(1)))
	s.DefineRisk(newContext("K1", []float64{100}))

	later := newContext("K1", []float64{80})
	s.ApplyRisk(later)
	if later.OilProfile[0] != 40 {
		t.Errorf("later well = %v, want 40", later.OilProfile[0])
	}
}
