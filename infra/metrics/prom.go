package metrics

import (
	coremetrics "github.com/kilianp07/wellplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	wells         *prometheus.CounterVec
	rounds        prometheus.Counter
	filtered      prometheus.Counter
	currentProfit prometheus.Gauge
	bestProfit    prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	wells := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wellplan_wells_planned_total",
		Help: "Total number of wells accepted into the plan",
	}, []string{"cluster"})
	rounds := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wellplan_rounds_total",
		Help: "Total number of candidate-selection rounds",
	})
	filtered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wellplan_candidates_filtered_total",
		Help: "Total number of candidates rejected by constraints",
	})
	currentProfit := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wellplan_annealing_current_profit",
		Help: "Total plan profit of the current annealing state",
	})
	bestProfit := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wellplan_annealing_best_profit",
		Help: "Best total plan profit seen during annealing",
	})

	if err := reg.Register(wells); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			wells = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rounds); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rounds = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(filtered); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			filtered = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(currentProfit); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			currentProfit = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bestProfit); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bestProfit = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		wells:         wells,
		rounds:        rounds,
		filtered:      filtered,
		currentProfit: currentProfit,
		bestProfit:    bestProfit,
	}, nil
}

// RecordWellPlanned increments the per-cluster counter.
func (s *PromSink) RecordWellPlanned(ev coremetrics.WellPlannedEvent) error {
	s.wells.WithLabelValues(ev.Cluster).Inc()
	return nil
}

// RecordRound counts a selection round and its filtered candidates.
func (s *PromSink) RecordRound(ev coremetrics.RoundEvent) error {
	s.rounds.Inc()
	s.filtered.Add(float64(ev.Filtered))
	return nil
}

// RecordAnnealing updates the profit gauges.
func (s *PromSink) RecordAnnealing(ev coremetrics.AnnealingEvent) error {
	s.currentProfit.Set(ev.CurrentProfit)
	s.bestProfit.Set(ev.BestProfit)
	return nil
}
