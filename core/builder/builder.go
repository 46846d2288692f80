package builder

import (
	"math"
	"math/rand"
	"time"

	"github.com/kilianp07/wellplan/core/constraint"
	"github.com/kilianp07/wellplan/core/cost"
	"github.com/kilianp07/wellplan/core/logger"
	"github.com/kilianp07/wellplan/core/metrics"
	"github.com/kilianp07/wellplan/core/model"
	"github.com/kilianp07/wellplan/core/production"
	"github.com/kilianp07/wellplan/core/risk"
	"github.com/kilianp07/wellplan/core/teams"
)

// SelectionPolicy chooses how the next well is picked from a round's
// candidates.
type SelectionPolicy int

const (
	// SelectAnnealing runs a per-step simulated-annealing search over the
	// round's candidates.
	SelectAnnealing SelectionPolicy = iota
	// SelectGreedy picks the candidate with the best penalized cost.
	SelectGreedy
	// SelectKeepOrder picks the candidate with the earliest planned entry
	// date, reproducing the business-as-usual ordering.
	SelectKeepOrder
)

// Annealing parameters for the per-step candidate search.
const (
	selectionInitialTemp = 1000.0
	selectionCoolingRate = 0.95
	selectionMinTemp     = 1.0
	selectionIterations  = 10
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// PlanBuilder iteratively constructs a plan over the remaining-wells pool,
// stepping through time and committing one candidate per round.
type PlanBuilder struct {
	start, end          time.Time
	costFn              cost.Function
	infra               Infrastructure
	profiler            production.Profile
	constraints         *constraint.Manager
	policy              SelectionPolicy
	clusterOrdered      bool
	useDrillTeamPenalty bool
	rng                 *rand.Rand
	log                 logger.Logger
	sink                metrics.Sink

	remaining []model.Well
}

// Option configures a PlanBuilder.
type Option func(*PlanBuilder)

// WithInfrastructure overrides the default readiness provider.
func WithInfrastructure(infra Infrastructure) Option {
	return func(b *PlanBuilder) { b.infra = infra }
}

// WithProfile overrides the default linear production profile.
func WithProfile(p production.Profile) Option {
	return func(b *PlanBuilder) { b.profiler = p }
}

// WithConstraints sets the hard limits applied to candidates.
func WithConstraints(constraints ...constraint.Constraint) Option {
	return func(b *PlanBuilder) { b.constraints = constraint.NewManager(constraints...) }
}

// WithPolicy selects the candidate-selection policy.
func WithPolicy(p SelectionPolicy) Option {
	return func(b *PlanBuilder) { b.policy = p }
}

// WithClusterOrdering toggles the earliest-entry-per-cluster filter.
func WithClusterOrdering(enabled bool) Option {
	return func(b *PlanBuilder) { b.clusterOrdered = enabled }
}

// WithDrillTeamPenalty toggles subtracting the drill-team penalty from
// candidate scores.
func WithDrillTeamPenalty(enabled bool) Option {
	return func(b *PlanBuilder) { b.useDrillTeamPenalty = enabled }
}

// WithRand sets the pseudorandom source, making runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(b *PlanBuilder) { b.rng = rng }
}

// WithLogger sets the builder's logger.
func WithLogger(l logger.Logger) Option {
	return func(b *PlanBuilder) { b.log = l }
}

// WithMetrics sets the sink planning events are recorded to.
func WithMetrics(s metrics.Sink) Option {
	return func(b *PlanBuilder) { b.sink = s }
}

// NewPlanBuilder creates a builder for the [start, end) planning horizon.
func NewPlanBuilder(start, end time.Time, costFn cost.Function, opts ...Option) *PlanBuilder {
	b := &PlanBuilder{
		start:               start,
		end:                 end,
		costFn:              costFn,
		infra:               SimpleInfrastructure{},
		profiler:            production.Linear{},
		constraints:         constraint.NewManager(),
		policy:              SelectAnnealing,
		clusterOrdered:      true,
		useDrillTeamPenalty: true,
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())),
		log:                 nopLogger{},
		sink:                metrics.NopSink{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compile builds a plan for the wells using the manager's team pool. The
// strategy may be nil. The returned plan is append-ordered by selection.
func (b *PlanBuilder) Compile(wells []model.Well, manager *teams.Manager, strategy risk.Strategy) (*model.Plan, error) {
	plan := model.NewPlan()
	b.remaining = append([]model.Well(nil), wells...)

	current := b.start
	for len(b.remaining) > 0 && current.Before(b.end) {
		candidates, err := b.buildContexts(manager, current)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			break
		}
		built := len(candidates)

		candidates, err = b.filterCandidates(candidates, plan, strategy)
		if err != nil {
			return nil, err
		}
		b.recordRound(current.Year(), built, built-len(candidates))

		if len(candidates) == 0 {
			nextYear, ok := b.constraints.NextBoundaryYear(current.Year())
			if !ok {
				nextYear = current.Year() + 1
			}
			b.log.Infof("no candidates for %d, moving to %d", current.Year(), nextYear)
			current = time.Date(nextYear, time.January, 1, 0, 0, 0, 0, time.UTC)
			continue
		}

		best := b.selectBest(candidates)
		b.log.Debugw("selected candidate", map[string]any{
			"well": best.Well.Name,
			"cost": costValue(best),
		})
		manager.Assign(best)
		b.removeWell(best.Well)

		if strategy != nil {
			strategy.DefineRisk(best)
			if err := b.costFn.Compute(best); err != nil {
				return nil, err
			}
		}

		plan.AddContext(best)
		b.recordWellPlanned(best)
	}
	return plan, nil
}

func (b *PlanBuilder) buildContexts(manager *teams.Manager, start time.Time) ([]*model.WellPlanContext, error) {
	var contexts []*model.WellPlanContext
	for _, well := range b.remaining {
		ctx, err := b.buildContext(well, manager, start)
		if err != nil {
			return nil, err
		}
		if ctx != nil {
			contexts = append(contexts, ctx)
		}
	}
	return contexts, nil
}

// buildContext tentatively schedules one well. It returns nil when the well
// cannot be a candidate this round: unmet cluster dependency, incomplete
// assignment, or a finish past the plan end.
func (b *PlanBuilder) buildContext(well model.Well, manager *teams.Manager, start time.Time) (*model.WellPlanContext, error) {
	if !b.clusterFinished(well.DependsOnCluster) {
		return nil, nil
	}

	ctxStart := start
	if ready := b.infra.ReadyDate(well); ready.After(ctxStart) {
		ctxStart = ready
	}
	ctx := model.NewWellPlanContext(well, ctxStart, b.end)

	if err := manager.GetAssignments(ctx); err != nil {
		return nil, err
	}

	tasks, err := well.Tasks()
	if err != nil {
		return nil, err
	}
	if len(ctx.Entries) < len(tasks) || ctx.NextAvailableDate().After(b.end) {
		return nil, nil
	}

	if err := b.profiler.Compute(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// clusterFinished reports whether no well of the cluster remains unscheduled.
func (b *PlanBuilder) clusterFinished(cluster string) bool {
	if cluster == "" {
		return true
	}
	for _, well := range b.remaining {
		if well.Cluster == cluster {
			return false
		}
	}
	return true
}

// filterCandidates applies cluster ordering, risk, cost and constraints. The
// earliest-entry-per-cluster rule deliberately stalls later wells of a
// cluster while its first one keeps failing downstream filters; they retry
// next round.
func (b *PlanBuilder) filterCandidates(candidates []*model.WellPlanContext, plan *model.Plan, strategy risk.Strategy) ([]*model.WellPlanContext, error) {
	if b.clusterOrdered && len(candidates) > 0 {
		earliest := make(map[string]*model.WellPlanContext)
		var order []string
		for _, c := range candidates {
			cluster := c.Well.Cluster
			existing, ok := earliest[cluster]
			if !ok {
				earliest[cluster] = c
				order = append(order, cluster)
				continue
			}
			if existing.Well.InitEntryDate.After(c.Well.InitEntryDate) {
				earliest[cluster] = c
			}
		}
		candidates = candidates[:0]
		for _, cluster := range order {
			candidates = append(candidates, earliest[cluster])
		}
	}

	if strategy != nil {
		for _, c := range candidates {
			strategy.ApplyRisk(c)
		}
	}

	for _, c := range candidates {
		if err := b.costFn.Compute(c); err != nil {
			return nil, err
		}
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if !b.constraints.Violated(plan, c) {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

func (b *PlanBuilder) selectBest(candidates []*model.WellPlanContext) *model.WellPlanContext {
	switch b.policy {
	case SelectKeepOrder:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Well.InitEntryDate.Before(best.Well.InitEntryDate) {
				best = c
			}
		}
		return best
	case SelectGreedy:
		best := candidates[0]
		bestScore := b.penalizedCost(best)
		for _, c := range candidates[1:] {
			if score := b.penalizedCost(c); score > bestScore {
				best, bestScore = c, score
			}
		}
		return best
	default:
		return b.annealingSelection(candidates)
	}
}

func (b *PlanBuilder) penalizedCost(c *model.WellPlanContext) float64 {
	score := costValue(c)
	if b.useDrillTeamPenalty {
		score -= c.Metadata["drill_team_penalty"]
	}
	return score
}

// annealingSelection runs a small simulated-annealing search over the
// round's candidates. Small candidate sets skip the cooling loop: 60% of the
// time the best-scoring candidate wins, otherwise a uniformly random one.
func (b *PlanBuilder) annealingSelection(candidates []*model.WellPlanContext) *model.WellPlanContext {
	var valid []*model.WellPlanContext
	for _, c := range candidates {
		if c.Cost != nil {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return candidates[0]
	}

	if len(valid) <= 3 {
		if b.rng.Float64() < 0.6 {
			best := valid[0]
			bestScore := b.candidateScore(best)
			for _, c := range valid[1:] {
				if score := b.candidateScore(c); score > bestScore {
					best, bestScore = c, score
				}
			}
			b.log.Debugf("annealing (small set) picked best: %s", best.Well.Name)
			return best
		}
		pick := valid[b.rng.Intn(len(valid))]
		b.log.Debugf("annealing (small set) picked random: %s", pick.Well.Name)
		return pick
	}

	current := valid[b.rng.Intn(len(valid))]
	currentScore := b.candidateScore(current)
	best, bestScore := current, currentScore

	for temp := selectionInitialTemp; temp > selectionMinTemp; temp *= selectionCoolingRate {
		for i := 0; i < selectionIterations; i++ {
			neighbor := b.neighborCandidate(valid, current)
			neighborScore := b.candidateScore(neighbor)
			if b.accept(currentScore, neighborScore, temp) {
				current, currentScore = neighbor, neighborScore
				if currentScore > bestScore {
					best, bestScore = current, currentScore
				}
			}
		}
	}
	b.log.Debugf("annealing picked: %s", best.Well.Name)
	return best
}

// candidateScore jitters the penalized cost and discounts wells whose
// planned entry lies far past the project start, floored at 0.8.
func (b *PlanBuilder) candidateScore(c *model.WellPlanContext) float64 {
	base := b.penalizedCost(c)
	jitter := 0.95 + 0.1*b.rng.Float64()
	timeFactor := 1.0
	if !c.Well.InitEntryDate.IsZero() {
		daysFromStart := c.Well.InitEntryDate.Sub(b.start).Hours() / 24
		timeFactor = math.Max(0.8, 1-daysFromStart/365)
	}
	return base * jitter * timeFactor
}

// neighborCandidate mostly jumps uniformly; 30% of the time it prefers a
// candidate whose cost is within 20% of the current one.
func (b *PlanBuilder) neighborCandidate(valid []*model.WellPlanContext, current *model.WellPlanContext) *model.WellPlanContext {
	if b.rng.Float64() < 0.7 {
		return valid[b.rng.Intn(len(valid))]
	}
	currentCost := costValue(current)
	costRange := currentCost * 0.2
	var similar []*model.WellPlanContext
	for _, c := range valid {
		if math.Abs(costValue(c)-currentCost) <= costRange {
			similar = append(similar, c)
		}
	}
	if len(similar) > 0 {
		return similar[b.rng.Intn(len(similar))]
	}
	return valid[b.rng.Intn(len(valid))]
}

// accept implements the Metropolis criterion.
func (b *PlanBuilder) accept(currentScore, newScore, temp float64) bool {
	if newScore > currentScore {
		return true
	}
	if temp <= 0 {
		return false
	}
	return b.rng.Float64() < math.Exp((newScore-currentScore)/temp)
}

func (b *PlanBuilder) removeWell(well model.Well) {
	for i, w := range b.remaining {
		if w.Name == well.Name && w.Cluster == well.Cluster {
			b.remaining = append(b.remaining[:i], b.remaining[i+1:]...)
			return
		}
	}
}

func (b *PlanBuilder) recordRound(year, built, filtered int) {
	ev := metrics.RoundEvent{Year: year, Built: built, Filtered: filtered, Time: time.Now()}
	if err := b.sink.RecordRound(ev); err != nil {
		b.log.Warnf("metrics: record round: %v", err)
	}
}

func (b *PlanBuilder) recordWellPlanned(ctx *model.WellPlanContext) {
	launch, _ := ctx.LaunchDate()
	ev := metrics.WellPlannedEvent{
		Well:       ctx.Well.Name,
		Cluster:    ctx.Well.Cluster,
		Cost:       costValue(ctx),
		LaunchDate: launch,
		Time:       time.Now(),
	}
	if err := b.sink.RecordWellPlanned(ev); err != nil {
		b.log.Warnf("metrics: record well planned: %v", err)
	}
}

func costValue(c *model.WellPlanContext) float64 {
	if c.Cost == nil {
		return 0
	}
	return *c.Cost
}
