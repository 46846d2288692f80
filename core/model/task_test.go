package model

import (
	"testing"
	"time"
)

func TestTaskFromCode(t *testing.T) {
	cases := map[string]Task{
		"DRILLING": TaskDrilling,
		"drilling": TaskDrilling,
		"ГС":       TaskDrilling,
		"ННС":      TaskDrilling,
		"МЗС":      TaskDrilling,
		"GTM":      TaskWorkover,
		"gtm":      TaskWorkover,
		"ГРП":      TaskWorkover,
		" ГРП ":    TaskWorkover,
	}
	for code, want := range cases {
		got, err := TaskFromCode(code)
		if err != nil {
			t.Fatalf("TaskFromCode(%q): %v", code, err)
		}
		if got != want {
			t.Errorf("TaskFromCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestTaskFromCodeInvalid(t *testing.T) {
	if _, err := TaskFromCode("ZBS"); err == nil {
		t.Fatal("expected error for unknown code")
	}
}

func TestTaskDurations(t *testing.T) {
	if got := TaskDrilling.Duration(); got != 30*24*time.Hour {
		t.Errorf("drilling duration = %v", got)
	}
	if got := TaskWorkover.Duration(); got != 20*24*time.Hour {
		t.Errorf("workover duration = %v", got)
	}
}

func TestWellTasks(t *testing.T) {
	w := Well{Name: "101", WellType: "ГС+ГРП"}
	tasks, err := w.Tasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 || tasks[0] != TaskDrilling || tasks[1] != TaskWorkover {
		t.Errorf("tasks = %v", tasks)
	}

	w.WellType = "ГС+XXX"
	if _, err := w.Tasks(); err == nil {
		t.Fatal("expected error for unknown segment")
	}
}
