package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilianp07/wellplan/core/production"
)

// Records reads measured production series from a directory holding one
// <well-name>.json file per well, each with "oil" and "liquid" arrays of
// monthly rates in tons per day.
func Records(dir string) (production.Records, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read records dir: %w", err)
	}
	records := make(production.Records)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		rec, err := readRecord(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", name, err)
		}
		records[name] = rec
	}
	return records, nil
}

func readRecord(path string) (production.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return production.Record{}, err
	}
	var raw struct {
		Oil    []float64 `json:"oil"`
		Liquid []float64 `json:"liquid"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return production.Record{}, err
	}
	return production.Record{Oil: raw.Oil, Liquid: raw.Liquid}, nil
}
