package config

import (
	"fmt"
	"strconv"

	"github.com/kilianp07/wellplan/core/model"
	"github.com/kilianp07/wellplan/core/teams"
)

// TeamGroup declares identical teams sharing one capability set.
type TeamGroup struct {
	Count int      `json:"count"`
	Tasks []string `json:"tasks"`
}

// MovementConfig selects the travel-time model.
type MovementConfig struct {
	// Type is "simple" or "distance".
	Type string `json:"type"`
	// Coordinates maps cluster names to map positions, used by the distance
	// model.
	Coordinates map[string]CoordinateConfig `json:"coordinates"`
}

// CoordinateConfig is a cluster position in meters.
type CoordinateConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TeamsConfig declares the crew pool and its scheduling rules.
type TeamsConfig struct {
	Groups   []TeamGroup    `json:"groups"`
	Movement MovementConfig `json:"movement"`
	// Limits caps distinct teams per year and task code, keyed by year.
	Limits map[string]map[string]int `json:"limits"`
	// TeamCount records competing-team counts used by the cost penalty.
	TeamCount *bool `json:"team_count"`
}

// Validate checks the pool declaration and limit keys.
func (c TeamsConfig) Validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one team group is required")
	}
	for i, g := range c.Groups {
		if g.Count <= 0 {
			return fmt.Errorf("team group %d: count must be positive", i)
		}
		if len(g.Tasks) == 0 {
			return fmt.Errorf("team group %d: at least one task is required", i)
		}
		for _, code := range g.Tasks {
			if _, err := model.TaskFromCode(code); err != nil {
				return fmt.Errorf("team group %d: %w", i, err)
			}
		}
	}
	switch c.Movement.Type {
	case "", "simple":
	case "distance":
		if len(c.Movement.Coordinates) == 0 {
			return fmt.Errorf("distance movement requires cluster coordinates")
		}
	default:
		return fmt.Errorf("unknown movement type %q", c.Movement.Type)
	}
	if _, err := c.YearlyLimits(); err != nil {
		return err
	}
	return nil
}

// Pool builds the team pool declared by the groups.
func (c TeamsConfig) Pool() (*model.TeamPool, error) {
	pool := model.NewTeamPool()
	for _, g := range c.Groups {
		tasks := make([]model.Task, 0, len(g.Tasks))
		for _, code := range g.Tasks {
			t, err := model.TaskFromCode(code)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
		pool.AddTeams(g.Count, tasks...)
	}
	return pool, nil
}

// BuildMovement constructs the configured travel-time model.
func (c TeamsConfig) BuildMovement() (teams.Movement, error) {
	switch c.Movement.Type {
	case "", "simple":
		return teams.NewSimpleMovement(), nil
	case "distance":
		coords := make(map[string]teams.Coordinate, len(c.Movement.Coordinates))
		for cluster, p := range c.Movement.Coordinates {
			coords[cluster] = teams.Coordinate{X: p.X, Y: p.Y, Z: p.Z}
		}
		return teams.NewDistanceMovement(coords), nil
	default:
		return nil, fmt.Errorf("unknown movement type %q", c.Movement.Type)
	}
}

// YearlyLimits converts the string-keyed limit table to core types.
func (c TeamsConfig) YearlyLimits() (teams.YearlyLimits, error) {
	limits := make(teams.YearlyLimits, len(c.Limits))
	for yearKey, taskLimits := range c.Limits {
		year, err := strconv.Atoi(yearKey)
		if err != nil {
			return nil, fmt.Errorf("limit year %q: %w", yearKey, err)
		}
		tl := make(teams.TaskLimits, len(taskLimits))
		for code, n := range taskLimits {
			task, err := model.TaskFromCode(code)
			if err != nil {
				return nil, fmt.Errorf("limit year %s: %w", yearKey, err)
			}
			tl[task] = n
		}
		limits[year] = tl
	}
	return limits, nil
}

// TeamCountEnabled reports whether crowding metadata is recorded.
func (c TeamsConfig) TeamCountEnabled() bool {
	return c.TeamCount == nil || *c.TeamCount
}
