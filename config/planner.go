package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/wellplan/core/builder"
)

const dateLayout = "2006-01-02"

// PlannerConfig drives the plan-construction loop.
type PlannerConfig struct {
	// Start and End bound the planning horizon, format 2006-01-02.
	Start string `json:"start"`
	End   string `json:"end"`
	// Policy selects the candidate picker: "annealing", "greedy" or
	// "keep_order".
	Policy string `json:"policy"`
	// ClusterOrdering keeps only the earliest-entry well per cluster in each
	// round.
	ClusterOrdering *bool `json:"cluster_ordering"`
	// DrillTeamPenalty subtracts crowding penalties from candidate scores.
	DrillTeamPenalty *bool `json:"drill_team_penalty"`
	// Seed makes runs reproducible; zero seeds from the clock.
	Seed int64 `json:"seed"`
	// Refine runs whole-plan simulated annealing after construction.
	Refine bool `json:"refine"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.Policy == "" {
		c.Policy = "annealing"
	}
	if c.ClusterOrdering == nil {
		v := true
		c.ClusterOrdering = &v
	}
	if c.DrillTeamPenalty == nil {
		v := true
		c.DrillTeamPenalty = &v
	}
}

// Validate checks mandatory fields.
func (c PlannerConfig) Validate() error {
	start, err := time.Parse(dateLayout, c.Start)
	if err != nil {
		return fmt.Errorf("planner start: %w", err)
	}
	end, err := time.Parse(dateLayout, c.End)
	if err != nil {
		return fmt.Errorf("planner end: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("planner end %s is not after start %s", c.End, c.Start)
	}
	if _, err := c.SelectionPolicy(); err != nil {
		return err
	}
	return nil
}

// Horizon returns the parsed planning window.
func (c PlannerConfig) Horizon() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, c.Start)
	end, _ = time.Parse(dateLayout, c.End)
	return start, end
}

// SelectionPolicy maps the policy name onto the builder's enum.
func (c PlannerConfig) SelectionPolicy() (builder.SelectionPolicy, error) {
	switch c.Policy {
	case "annealing":
		return builder.SelectAnnealing, nil
	case "greedy":
		return builder.SelectGreedy, nil
	case "keep_order":
		return builder.SelectKeepOrder, nil
	default:
		return 0, fmt.Errorf("unknown selection policy %q", c.Policy)
	}
}
