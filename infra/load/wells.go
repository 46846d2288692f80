package load

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

const dateLayout = "2006-01-02"

// Wells reads a well roster from path, dispatching on the file extension.
// CSV and JSON are supported.
func Wells(path string) ([]model.Well, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wells file: %w", err)
	}
	defer f.Close()

	var wells []model.Well
	switch ext := filepath.Ext(path); ext {
	case ".csv":
		wells, err = WellsFromCSV(f)
	case ".json":
		wells, err = WellsFromJSON(f)
	default:
		return nil, fmt.Errorf("unsupported wells file extension: %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return wells, validate(wells)
}

// wellRecord mirrors the JSON roster schema.
type wellRecord struct {
	Name             string  `json:"name"`
	Cluster          string  `json:"cluster"`
	Field            string  `json:"field"`
	Layer            string  `json:"layer"`
	Purpose          string  `json:"purpose"`
	WellType         string  `json:"well_type"`
	OilRate          float64 `json:"oil_rate"`
	LiqRate          float64 `json:"liq_rate"`
	Length           float64 `json:"length"`
	InitEntryDate    string  `json:"init_entry_date"`
	ReadinessDate    string  `json:"readiness_date"`
	DependsOnCluster string  `json:"depends_on_cluster"`
}

// WellsFromJSON decodes a JSON array of well records.
func WellsFromJSON(r io.Reader) ([]model.Well, error) {
	var recs []wellRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode wells json: %w", err)
	}
	wells := make([]model.Well, 0, len(recs))
	for i, rec := range recs {
		w, err := rec.toWell()
		if err != nil {
			return nil, fmt.Errorf("well %d: %w", i, err)
		}
		wells = append(wells, w)
	}
	return wells, nil
}

func (rec wellRecord) toWell() (model.Well, error) {
	w := model.Well{
		Name:             rec.Name,
		Cluster:          rec.Cluster,
		Field:            rec.Field,
		Layer:            rec.Layer,
		Purpose:          rec.Purpose,
		WellType:         rec.WellType,
		OilRate:          rec.OilRate,
		LiqRate:          rec.LiqRate,
		Length:           rec.Length,
		DependsOnCluster: rec.DependsOnCluster,
	}
	var err error
	if w.InitEntryDate, err = parseDate(rec.InitEntryDate); err != nil {
		return model.Well{}, fmt.Errorf("init_entry_date: %w", err)
	}
	if w.ReadinessDate, err = parseDate(rec.ReadinessDate); err != nil {
		return model.Well{}, fmt.Errorf("readiness_date: %w", err)
	}
	return w, nil
}

// WellsFromCSV decodes a roster with a header row. Column order is free;
// unknown columns are ignored.
func WellsFromCSV(r io.Reader) ([]model.Well, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("wells csv: missing required column %q", "name")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var wells []model.Well
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("wells csv line %d: %w", line, err)
		}
		rec := wellRecord{
			Name:             field(row, "name"),
			Cluster:          field(row, "cluster"),
			Field:            field(row, "field"),
			Layer:            field(row, "layer"),
			Purpose:          field(row, "purpose"),
			WellType:         field(row, "well_type"),
			InitEntryDate:    field(row, "init_entry_date"),
			ReadinessDate:    field(row, "readiness_date"),
			DependsOnCluster: field(row, "depends_on_cluster"),
		}
		if rec.OilRate, err = parseFloat(field(row, "oil_rate")); err != nil {
			return nil, fmt.Errorf("wells csv line %d: oil_rate: %w", line, err)
		}
		if rec.LiqRate, err = parseFloat(field(row, "liq_rate")); err != nil {
			return nil, fmt.Errorf("wells csv line %d: liq_rate: %w", line, err)
		}
		if rec.Length, err = parseFloat(field(row, "length")); err != nil {
			return nil, fmt.Errorf("wells csv line %d: length: %w", line, err)
		}
		w, err := rec.toWell()
		if err != nil {
			return nil, fmt.Errorf("wells csv line %d: %w", line, err)
		}
		wells = append(wells, w)
	}
	return wells, nil
}

// validate rejects rosters with unknown well type codes up front, before
// planning starts.
func validate(wells []model.Well) error {
	for _, w := range wells {
		if _, err := w.Tasks(); err != nil {
			return err
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
