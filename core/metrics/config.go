package metrics

// SinkConfig selects and configures one metrics sink.
type SinkConfig struct {
	// Type is one of "nop", "prometheus" or "influx".
	Type string `json:"type"`

	// Influx settings.
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []SinkConfig `json:"sinks"`
}
