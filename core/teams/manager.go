package teams

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/wellplan/core/logger"
	"github.com/kilianp07/wellplan/core/model"
)

// State tracks a team's position on the timeline. States are owned by the
// Manager and mutated only through Assign.
type State struct {
	AvailableFrom  time.Time
	CurrentCluster string
}

// TaskLimits caps the number of distinct teams allowed per task.
type TaskLimits map[model.Task]int

// YearlyLimits maps calendar years to task limits.
type YearlyLimits map[int]TaskLimits

// DefaultHorizonYear bounds the quota year-advance search. A quota that is
// still unsatisfied past this year makes the team drop out of the candidate
// set instead of looping forever.
const DefaultHorizonYear = 2100

// Manager assigns teams to well tasks on a timeline, enforcing yearly quotas
// and travel time. One plan-construction run owns its Manager exclusively.
type Manager struct {
	pool            *model.TeamPool
	movement        Movement
	states          map[uuid.UUID]*State
	teamsByID       map[uuid.UUID]model.Team
	limits          YearlyLimits
	usage           map[int]map[model.Task]map[uuid.UUID]bool
	enableTeamCount bool
	horizonYear     int
	log             logger.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithMovement overrides the default flat movement model.
func WithMovement(m Movement) Option {
	return func(mgr *Manager) { mgr.movement = m }
}

// WithLimits sets the yearly distinct-team quotas.
func WithLimits(l YearlyLimits) Option {
	return func(mgr *Manager) { mgr.limits = l }
}

// WithTeamCount toggles recording of competing-team counts per cluster.
func WithTeamCount(enabled bool) Option {
	return func(mgr *Manager) { mgr.enableTeamCount = enabled }
}

// WithHorizonYear caps the quota year-advance search.
func WithHorizonYear(year int) Option {
	return func(mgr *Manager) { mgr.horizonYear = year }
}

// WithLogger sets the manager's logger.
func WithLogger(l logger.Logger) Option {
	return func(mgr *Manager) { mgr.log = l }
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// NewManager creates a manager over the pool with one fresh state per team.
func NewManager(pool *model.TeamPool, opts ...Option) *Manager {
	m := &Manager{
		pool:            pool,
		movement:        NewSimpleMovement(),
		states:          make(map[uuid.UUID]*State),
		teamsByID:       make(map[uuid.UUID]model.Team),
		limits:          YearlyLimits{},
		usage:           make(map[int]map[model.Task]map[uuid.UUID]bool),
		enableTeamCount: true,
		horizonYear:     DefaultHorizonYear,
		log:             nopLogger{},
	}
	for _, team := range pool.Teams() {
		m.states[team.ID] = &State{}
		m.teamsByID[team.ID] = team
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Pool exposes the underlying team pool.
func (m *Manager) Pool() *model.TeamPool { return m.pool }

// StateOf returns a copy of a team's current state.
func (m *Manager) StateOf(teamID uuid.UUID) (State, bool) {
	st, ok := m.states[teamID]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// GetAssignments finds, for every task implied by the well's type code, the
// team window with the earliest finish and appends it to the context. A task
// nobody in the pool supports is a fatal misconfiguration. A task no team can
// fit before the horizon simply produces no entry; the builder drops such
// incomplete contexts.
func (m *Manager) GetAssignments(ctx *model.WellPlanContext) error {
	tasks, err := ctx.Well.Tasks()
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if !m.pool.Supports(task) {
			return fmt.Errorf("task %s is not supported by any team", task)
		}
		type window struct {
			start, end time.Time
			team       model.Team
			travel     time.Duration
		}
		var best *window
		for _, team := range m.pool.TeamsFor(task) {
			state := m.states[team.ID]
			travel := m.travelTime(state, ctx.Well)
			start, ok := m.findAvailableStart(task, team.ID, travel, ctx)
			if !ok {
				continue
			}
			end := start.Add(task.Duration())
			if best == nil || end.Before(best.end) {
				best = &window{start: start, end: end, team: team, travel: travel}
			}
		}
		if best == nil {
			continue
		}
		ctx.Entries = append(ctx.Entries, model.ScheduleEntry{
			Task:       task,
			TeamID:     best.team.ID,
			Start:      best.start,
			End:        best.end,
			TravelTime: best.travel,
		})
		if m.enableTeamCount {
			m.countTeamsOnCluster(ctx, task, best.team.ID)
		}
	}
	return nil
}

// Assign commits the context's entries: each performing team becomes busy
// until its entry end, relocated to the well's cluster, and its quota usage
// is recorded.
func (m *Manager) Assign(ctx *model.WellPlanContext) {
	for _, entry := range ctx.Entries {
		m.states[entry.TeamID] = &State{
			AvailableFrom:  entry.End,
			CurrentCluster: ctx.Well.Cluster,
		}
		m.recordUsage(entry.Task, entry.Start.Year(), entry.TeamID)
	}
}

func (m *Manager) travelTime(state *State, well model.Well) time.Duration {
	days := m.movement.MoveDays(state.CurrentCluster, well.Cluster)
	return time.Duration(days * 24 * float64(time.Hour))
}

// findAvailableStart searches forward from the team's earliest feasible start
// for a year whose quota still admits the team. The search jumps to Jan 1 of
// the following year on every quota miss and gives up past the horizon.
func (m *Manager) findAvailableStart(task model.Task, teamID uuid.UUID, travel time.Duration, ctx *model.WellPlanContext) (time.Time, bool) {
	start := m.states[teamID].AvailableFrom.Add(travel)
	if next := ctx.NextAvailableDate(); next.After(start) {
		start = next
	}
	for {
		year := start.Year()
		if m.checkLimit(task, year, teamID) {
			return start, true
		}
		if year >= m.horizonYear {
			m.log.Warnf("quota for task %s keeps team busy past year %d, giving up", task, m.horizonYear)
			return time.Time{}, false
		}
		start = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

// checkLimit reports whether the (year, task) quota admits the team. A team
// already counted for the pair always passes; the limit gates distinct teams,
// not task instances.
func (m *Manager) checkLimit(task model.Task, year int, teamID uuid.UUID) bool {
	if len(m.limits) == 0 {
		return true
	}
	yearLimits, ok := m.limits[year]
	if !ok {
		return true
	}
	limit, ok := yearLimits[task]
	if !ok {
		return true
	}
	if m.usage[year][task][teamID] {
		return true
	}
	return len(m.usage[year][task]) < limit
}

// recordUsage marks the team as used for every limit-bearing year at or after
// the assignment year. Re-recording an already counted team is a no-op.
func (m *Manager) recordUsage(task model.Task, assignmentYear int, teamID uuid.UUID) {
	var years []int
	for year := range m.limits {
		if year >= assignmentYear {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	for _, year := range years {
		if _, ok := m.limits[year][task]; !ok {
			continue
		}
		if !m.checkLimit(task, year, teamID) {
			continue
		}
		if m.usage[year] == nil {
			m.usage[year] = make(map[model.Task]map[uuid.UUID]bool)
		}
		if m.usage[year][task] == nil {
			m.usage[year][task] = make(map[uuid.UUID]bool)
		}
		m.usage[year][task][teamID] = true
	}
}

// countTeamsOnCluster records how many other capable teams currently sit on
// the well's cluster, under the team_count_<task> metadata key.
func (m *Manager) countTeamsOnCluster(ctx *model.WellPlanContext, task model.Task, chosen uuid.UUID) {
	count := 0
	for id, state := range m.states {
		if id == chosen {
			continue
		}
		if state.CurrentCluster != ctx.Well.Cluster {
			continue
		}
		if m.teamsByID[id].Supports(task) {
			count++
		}
	}
	ctx.Metadata["team_count_"+strings.ToLower(task.String())] = float64(count)
}
