package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

// scheduleRow is the flat serialization of one schedule entry.
type scheduleRow struct {
	Well       string  `json:"well"`
	Cluster    string  `json:"cluster"`
	Task       string  `json:"task"`
	TeamID     string  `json:"team_id"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	TravelDays float64 `json:"travel_days"`
	Cost       float64 `json:"cost"`
}

func rows(plan *model.Plan) []scheduleRow {
	var out []scheduleRow
	for _, wp := range plan.WellPlans {
		cost := 0.0
		if wp.Cost != nil {
			cost = *wp.Cost
		}
		for _, e := range wp.Entries {
			out = append(out, scheduleRow{
				Well:       wp.Well.Name,
				Cluster:    wp.Well.Cluster,
				Task:       e.Task.String(),
				TeamID:     e.TeamID.String(),
				Start:      e.Start.Format(time.RFC3339),
				End:        e.End.Format(time.RFC3339),
				TravelDays: e.TravelTime.Hours() / 24,
				Cost:       cost,
			})
		}
	}
	return out
}

// WriteJSON writes the plan schedule to w in JSON format.
func WriteJSON(w io.Writer, plan *model.Plan) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rows(plan))
}

// WriteCSV writes the plan schedule to w in CSV format.
func WriteCSV(w io.Writer, plan *model.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"well", "cluster", "task", "team_id", "start", "end", "travel_days", "cost"}); err != nil {
		return err
	}
	for _, r := range rows(plan) {
		rec := []string{
			r.Well,
			r.Cluster,
			r.Task,
			r.TeamID,
			r.Start,
			r.End,
			strconv.FormatFloat(r.TravelDays, 'f', -1, 64),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
