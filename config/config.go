package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/wellplan/core/metrics"
)

type Config struct {
	Planner     PlannerConfig     `json:"planner"`
	Wells       WellsConfig       `json:"wells"`
	Teams       TeamsConfig       `json:"teams"`
	Cost        CostConfig        `json:"cost"`
	Constraints ConstraintsConfig `json:"constraints"`
	Risk        RiskConfig        `json:"risk"`
	Profile     ProfileConfig     `json:"profile"`
	Metrics     metrics.Config    `json:"metrics"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("WP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "wp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.Cost.SetDefaults()
	cfg.Profile.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Wells.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Teams.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Risk.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Profile.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WellsConfig locates the input roster.
type WellsConfig struct {
	// Path to the roster file, csv or json.
	Path string `json:"path"`
}

// Validate checks mandatory fields.
func (c WellsConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("wells path is required")
	}
	return nil
}
