package model

import (
	"fmt"
	"strings"
	"time"
)

// Well describes a single well from the drilling roster. The descriptor is
// immutable; scheduling state lives in WellPlanContext.
type Well struct {
	Name     string
	Cluster  string
	Field    string
	Layer    string
	Purpose  string
	WellType string  // composite code, segments joined with "+"
	OilRate  float64 // tons per day
	LiqRate  float64 // tons per day
	Length   float64 // absolute well length in meters

	// InitEntryDate is the originally planned entry date, zero when unknown.
	InitEntryDate time.Time
	// ReadinessDate gates the well on infrastructure, zero when absent.
	ReadinessDate time.Time
	// DependsOnCluster forbids scheduling until every well of the named
	// cluster has left the remaining pool. Empty means no dependency.
	DependsOnCluster string
}

// Tasks resolves the composite well type code into the implied tasks.
func (w Well) Tasks() ([]Task, error) {
	parts := strings.Split(w.WellType, "+")
	tasks := make([]Task, 0, len(parts))
	for _, p := range parts {
		t, err := TaskFromCode(p)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", w.Name, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
