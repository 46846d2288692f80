package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/wellplan/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatal(err)
	}

	ev := coremetrics.WellPlannedEvent{Well: "101", Cluster: "K1", Cost: 100, Time: time.Now()}
	if err := sink.RecordWellPlanned(ev); err != nil {
		t.Fatal(err)
	}
	if err := sink.RecordRound(coremetrics.RoundEvent{Year: 2025, Built: 4, Filtered: 2}); err != nil {
		t.Fatal(err)
	}
	if err := sink.RecordAnnealing(coremetrics.AnnealingEvent{CurrentProfit: 10, BestProfit: 20}); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"wellplan_wells_planned_total",
		"wellplan_rounds_total",
		"wellplan_candidates_filtered_total",
		"wellplan_annealing_best_profit",
	} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatal(err)
	}
	// Re-registering on the same registry reuses the existing collectors.
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration: %v", err)
	}
}

func TestFactoryNopAndMulti(t *testing.T) {
	sink, err := NewSink(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Errorf("empty config sink = %T", sink)
	}

	sink, err = NewSink([]coremetrics.SinkConfig{{Type: "nop"}, {Type: "nop"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sink.(*MultiSink); !ok {
		t.Errorf("two sinks = %T, want MultiSink", sink)
	}

	if _, err := NewSink([]coremetrics.SinkConfig{{Type: "statsd"}}); err == nil {
		t.Fatal("expected error for unknown sink type")
	}
}
