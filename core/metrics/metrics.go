package metrics

import "time"

// WellPlannedEvent records a well accepted into the plan.
type WellPlannedEvent struct {
	Well       string
	Cluster    string
	Cost       float64
	LaunchDate time.Time
	Time       time.Time
}

// RoundEvent captures one candidate-selection round of the builder. Filtered
// counts the candidates rejected between building and selection.
type RoundEvent struct {
	Year     int
	Built    int
	Filtered int
	Time     time.Time
}

// Sink records planning events for observability purposes.
type Sink interface {
	RecordWellPlanned(ev WellPlannedEvent) error
	RecordRound(ev RoundEvent) error
}

// AnnealingEvent is a snapshot of a cooling step during plan refinement.
type AnnealingEvent struct {
	Temperature   float64
	CurrentProfit float64
	BestProfit    float64
	Time          time.Time
}

// AnnealingRecorder is implemented by sinks able to record annealing
// progress.
type AnnealingRecorder interface {
	RecordAnnealing(ev AnnealingEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordWellPlanned(WellPlannedEvent) error { return nil }
func (NopSink) RecordRound(RoundEvent) error             { return nil }

// Ensure NopSink implements AnnealingRecorder.
func (NopSink) RecordAnnealing(AnnealingEvent) error { return nil }
