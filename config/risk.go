package config

import (
	"fmt"
	"math/rand"

	"github.com/kilianp07/wellplan/core/risk"
)

// RiskConfig parametrizes random cluster-level production losses.
type RiskConfig struct {
	Enabled       bool    `json:"enabled"`
	TriggerChance float64 `json:"trigger_chance"`
	Impact        float64 `json:"impact"`
}

// Validate checks probability ranges.
func (c RiskConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.TriggerChance < 0 || c.TriggerChance > 1 {
		return fmt.Errorf("risk trigger_chance %v out of [0, 1]", c.TriggerChance)
	}
	if c.Impact < 0 || c.Impact > 1 {
		return fmt.Errorf("risk impact %v out of [0, 1]", c.Impact)
	}
	return nil
}

// Build returns the configured strategy, or nil when risk is disabled.
func (c RiskConfig) Build(rng *rand.Rand) risk.Strategy {
	if !c.Enabled {
		return nil
	}
	return risk.NewClusterRandom(c.TriggerChance, c.Impact, rng)
}
