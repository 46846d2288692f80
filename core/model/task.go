package model

import (
	"fmt"
	"strings"
	"time"
)

// Task is a unit of drilling or workover work with a fixed duration.
type Task int

const (
	// TaskDrilling covers well construction.
	TaskDrilling Task = iota
	// TaskWorkover covers geological-technical measures such as fracturing.
	TaskWorkover
)

type taskSpec struct {
	name     string
	duration time.Duration
	aliases  []string
}

// Roster files identify tasks by field-office codes, hence the alias lists.
var taskSpecs = map[Task]taskSpec{
	TaskDrilling: {name: "DRILLING", duration: 30 * 24 * time.Hour, aliases: []string{"ГС", "ННС", "МЗС"}},
	TaskWorkover: {name: "GTM", duration: 20 * 24 * time.Hour, aliases: []string{"ГРП"}},
}

// AllTasks lists every known task kind.
func AllTasks() []Task { return []Task{TaskDrilling, TaskWorkover} }

func (t Task) String() string { return taskSpecs[t].name }

// Duration returns the fixed duration of the task.
func (t Task) Duration() time.Duration { return taskSpecs[t].duration }

// TaskFromCode resolves a roster code to a task. A code matches the task name
// or one of its aliases, case-insensitively.
func TaskFromCode(code string) (Task, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, t := range AllTasks() {
		spec := taskSpecs[t]
		if code == spec.name {
			return t, nil
		}
		for _, a := range spec.aliases {
			if code == a {
				return t, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid task code: %q", code)
}
