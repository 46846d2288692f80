package config

import (
	"fmt"
)

// ProfileConfig selects the production estimation model.
type ProfileConfig struct {
	// Type is "linear", "arps" or "records".
	Type string `json:"type"`
	// RecordsDir holds one json file of measured series per well; required by
	// the records profile.
	RecordsDir string `json:"records_dir"`
}

// SetDefaults applies sane defaults.
func (c *ProfileConfig) SetDefaults() {
	if c.Type == "" {
		c.Type = "linear"
	}
}

// Validate checks the type and its requirements.
func (c ProfileConfig) Validate() error {
	switch c.Type {
	case "linear", "arps":
		return nil
	case "records":
		if c.RecordsDir == "" {
			return fmt.Errorf("records profile requires records_dir")
		}
		return nil
	default:
		return fmt.Errorf("unknown profile type %q", c.Type)
	}
}
