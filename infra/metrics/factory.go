package metrics

import (
	"fmt"

	coremetrics "github.com/kilianp07/wellplan/core/metrics"
)

// NewSink builds a sink from configuration. Several configured sinks are
// wrapped in a MultiSink; none yields a NopSink.
func NewSink(cfgs []coremetrics.SinkConfig) (coremetrics.Sink, error) {
	sinks := make([]coremetrics.Sink, 0, len(cfgs))
	for _, cfg := range cfgs {
		switch cfg.Type {
		case "", "nop":
			sinks = append(sinks, coremetrics.NopSink{})
		case "prometheus":
			s, err := NewPromSink()
			if err != nil {
				return nil, fmt.Errorf("prometheus sink: %w", err)
			}
			sinks = append(sinks, s)
		case "influx":
			sinks = append(sinks, NewInfluxSinkWithFallback(cfg.URL, cfg.Token, cfg.Org, cfg.Bucket))
		default:
			return nil, fmt.Errorf("unknown metrics sink type: %q", cfg.Type)
		}
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
