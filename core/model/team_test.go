package model

import "testing"

func TestTeamPool(t *testing.T) {
	pool := NewTeamPool()
	pool.AddTeams(2, TaskDrilling)
	pool.AddTeams(1, TaskWorkover)
	pool.AddTeam(TaskDrilling, TaskWorkover)

	if got := len(pool.TeamsFor(TaskDrilling)); got != 3 {
		t.Errorf("drilling teams = %d, want 3", got)
	}
	if got := len(pool.TeamsFor(TaskWorkover)); got != 2 {
		t.Errorf("workover teams = %d, want 2", got)
	}
	if !pool.Supports(TaskDrilling) || !pool.Supports(TaskWorkover) {
		t.Error("pool should support both tasks")
	}
	// The dual-capability team counts once.
	if got := len(pool.Teams()); got != 4 {
		t.Errorf("total teams = %d, want 4", got)
	}
}

func TestTeamSupports(t *testing.T) {
	team := NewTeam(TaskDrilling)
	if !team.Supports(TaskDrilling) {
		t.Error("team should support drilling")
	}
	if team.Supports(TaskWorkover) {
		t.Error("team should not support workover")
	}
}
