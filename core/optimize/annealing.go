package optimize

import (
	"math"
	"math/rand"
	"time"

	"github.com/kilianp07/wellplan/core/logger"
	"github.com/kilianp07/wellplan/core/metrics"
	"github.com/kilianp07/wellplan/core/model"
	"github.com/kilianp07/wellplan/core/teams"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// Annealer refines a completed plan with simulated annealing over whole-plan
// mutations: swapping two wells, shifting one well's schedule, or moving an
// entry to another capable team.
type Annealer struct {
	InitialTemp float64
	CoolingRate float64
	MinTemp     float64
	Iterations  int

	rng  *rand.Rand
	log  logger.Logger
	sink metrics.AnnealingRecorder
}

// Option configures an Annealer.
type Option func(*Annealer)

// WithLogger sets the annealer's logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Annealer) { a.log = l }
}

// WithMetrics sets the recorder cooling snapshots go to.
func WithMetrics(r metrics.AnnealingRecorder) Option {
	return func(a *Annealer) { a.sink = r }
}

// NewAnnealer returns an annealer with the default cooling schedule, drawing
// from the given generator.
func NewAnnealer(rng *rand.Rand, opts ...Option) *Annealer {
	a := &Annealer{
		InitialTemp: 1000,
		CoolingRate: 0.95,
		MinTemp:     1,
		Iterations:  100,
		rng:         rng,
		log:         nopLogger{},
		sink:        metrics.NopSink{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Optimize perturbs clones of the plan, accepting moves by the Metropolis
// criterion on total profit, and returns the best plan seen. Every neighbor
// is re-committed through the manager so team states stay consistent; the
// manager's occupancy may therefore override mutated entry timing.
func (a *Annealer) Optimize(plan *model.Plan, manager *teams.Manager) *model.Plan {
	current := plan.Clone()
	best := plan.Clone()
	currentProfit := current.TotalProfit()
	bestProfit := currentProfit

	for temp := a.InitialTemp; temp > a.MinTemp; temp *= a.CoolingRate {
		for i := 0; i < a.Iterations; i++ {
			neighbor := a.neighbor(current, manager)
			neighborProfit := neighbor.TotalProfit()
			if a.accept(currentProfit, neighborProfit, temp) {
				current = neighbor
				currentProfit = neighborProfit
				if currentProfit > bestProfit {
					best = current.Clone()
					bestProfit = currentProfit
				}
			}
		}
		a.record(temp, currentProfit, bestProfit)
	}
	a.log.Infof("annealing finished, best profit %.2f", bestProfit)
	return best
}

func (a *Annealer) neighbor(plan *model.Plan, manager *teams.Manager) *model.Plan {
	neighbor := plan.Clone()
	if len(neighbor.WellPlans) > 0 {
		switch a.rng.Intn(3) {
		case 0:
			a.swapWells(neighbor)
		case 1:
			a.shiftWell(neighbor)
		case 2:
			a.reassignTeam(neighbor, manager)
		}
	}
	for _, wp := range neighbor.WellPlans {
		manager.Assign(wp)
	}
	return neighbor
}

// swapWells exchanges two contexts' positions in the plan list. The schedule
// itself is untouched.
func (a *Annealer) swapWells(plan *model.Plan) {
	if len(plan.WellPlans) < 2 {
		return
	}
	i := a.rng.Intn(len(plan.WellPlans))
	j := a.rng.Intn(len(plan.WellPlans) - 1)
	if j >= i {
		j++
	}
	plan.WellPlans[i], plan.WellPlans[j] = plan.WellPlans[j], plan.WellPlans[i]
}

// shiftWell moves every entry of one well by the same random offset within
// ±30 days.
func (a *Annealer) shiftWell(plan *model.Plan) {
	wp := plan.WellPlans[a.rng.Intn(len(plan.WellPlans))]
	shift := time.Duration(a.rng.Intn(61)-30) * 24 * time.Hour
	for i := range wp.Entries {
		wp.Entries[i].Start = wp.Entries[i].Start.Add(shift)
		wp.Entries[i].End = wp.Entries[i].End.Add(shift)
	}
}

// reassignTeam hands one entry to another team capable of the same task.
func (a *Annealer) reassignTeam(plan *model.Plan, manager *teams.Manager) {
	wp := plan.WellPlans[a.rng.Intn(len(plan.WellPlans))]
	if len(wp.Entries) == 0 {
		return
	}
	i := a.rng.Intn(len(wp.Entries))
	capable := manager.Pool().TeamsFor(wp.Entries[i].Task)
	if len(capable) == 0 {
		return
	}
	wp.Entries[i].TeamID = capable[a.rng.Intn(len(capable))].ID
}

// accept implements the Metropolis criterion.
func (a *Annealer) accept(currentProfit, newProfit, temp float64) bool {
	if newProfit > currentProfit {
		return true
	}
	return math.Exp((newProfit-currentProfit)/temp) > a.rng.Float64()
}

func (a *Annealer) record(temp, currentProfit, bestProfit float64) {
	ev := metrics.AnnealingEvent{
		Temperature:   temp,
		CurrentProfit: currentProfit,
		BestProfit:    bestProfit,
		Time:          time.Now(),
	}
	if err := a.sink.RecordAnnealing(ev); err != nil {
		a.log.Warnf("metrics: record annealing: %v", err)
	}
}
