package model

import "github.com/google/uuid"

// Team is a crew able to perform one or more tasks. Teams are immutable once
// created and identified by their ID.
type Team struct {
	ID        uuid.UUID
	supported map[Task]bool
}

// NewTeam creates a team with a fresh identity and the given capabilities.
func NewTeam(tasks ...Task) Team {
	supported := make(map[Task]bool, len(tasks))
	for _, t := range tasks {
		supported[t] = true
	}
	return Team{ID: uuid.New(), supported: supported}
}

// Supports reports whether the team can perform the task.
func (t Team) Supports(task Task) bool { return t.supported[task] }

// SupportedTasks returns the team's capability set.
func (t Team) SupportedTasks() []Task {
	tasks := make([]Task, 0, len(t.supported))
	for _, task := range AllTasks() {
		if t.supported[task] {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// TeamPool indexes teams by the tasks they can perform.
type TeamPool struct {
	byTask map[Task][]Team
}

// NewTeamPool returns an empty pool.
func NewTeamPool() *TeamPool {
	return &TeamPool{byTask: make(map[Task][]Team)}
}

// AddTeam registers a new team able to perform the given tasks and returns it.
func (p *TeamPool) AddTeam(tasks ...Task) Team {
	team := NewTeam(tasks...)
	for _, t := range team.SupportedTasks() {
		p.byTask[t] = append(p.byTask[t], team)
	}
	return team
}

// AddTeams registers n identical-capability teams.
func (p *TeamPool) AddTeams(n int, tasks ...Task) {
	for i := 0; i < n; i++ {
		p.AddTeam(tasks...)
	}
}

// TeamsFor returns the teams able to perform the task.
func (p *TeamPool) TeamsFor(task Task) []Team {
	return p.byTask[task]
}

// Supports reports whether at least one team can perform the task.
func (p *TeamPool) Supports(task Task) bool {
	return len(p.byTask[task]) > 0
}

// Teams returns every pooled team exactly once.
func (p *TeamPool) Teams() []Team {
	seen := make(map[uuid.UUID]bool)
	var teams []Team
	for _, task := range AllTasks() {
		for _, team := range p.byTask[task] {
			if !seen[team.ID] {
				seen[team.ID] = true
				teams = append(teams, team)
			}
		}
	}
	return teams
}
