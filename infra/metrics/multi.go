package metrics

import coremetrics "github.com/kilianp07/wellplan/core/metrics"

// MultiSink fanouts planning events to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordWellPlanned forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordWellPlanned(ev coremetrics.WellPlannedEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordWellPlanned(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordRound forwards round events.
func (m *MultiSink) RecordRound(ev coremetrics.RoundEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRound(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordAnnealing forwards cooling snapshots to sinks that support them.
func (m *MultiSink) RecordAnnealing(ev coremetrics.AnnealingEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.AnnealingRecorder); ok {
			if err := rec.RecordAnnealing(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
