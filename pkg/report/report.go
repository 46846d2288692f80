package report

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/wellplan/core/model"
)

// Report summarizes a compiled plan for operators.
type Report struct {
	Wells        int
	TotalProfit  float64
	MeanWellCost float64
	CostStdDev   float64

	OilPerYear    map[int]float64
	CapexPerYear  map[int]float64
	StartsPerYear map[int]int
}

// Build computes summary statistics over the plan.
func Build(plan *model.Plan) Report {
	costs := make([]float64, 0, len(plan.WellPlans))
	for _, wp := range plan.WellPlans {
		if wp.Cost != nil {
			costs = append(costs, *wp.Cost)
		}
	}
	var mean, std float64
	if len(costs) > 0 {
		mean = stat.Mean(costs, nil)
		std = stat.StdDev(costs, nil)
	}
	return Report{
		Wells:         len(plan.WellPlans),
		TotalProfit:   plan.TotalProfit(),
		MeanWellCost:  mean,
		CostStdDev:    std,
		OilPerYear:    plan.OilProductionPerYear(),
		CapexPerYear:  plan.CapexPerYear(),
		StartsPerYear: plan.WellStartsPerYear(),
	}
}

// WriteText renders the report as a plain-text table.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "wells planned:   %d\n", r.Wells); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "total profit:    %.2f\n", r.TotalProfit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "mean well cost:  %.2f (stddev %.2f)\n\n", r.MeanWellCost, r.CostStdDev); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "year       starts          oil        capex"); err != nil {
		return err
	}
	for _, year := range r.years() {
		_, err := fmt.Fprintf(w, "%d %11d %12.1f %12.1f\n",
			year, r.StartsPerYear[year], r.OilPerYear[year], r.CapexPerYear[year])
		if err != nil {
			return err
		}
	}
	return nil
}

// years collects every year present in any per-year series, sorted.
func (r Report) years() []int {
	seen := make(map[int]bool)
	for y := range r.OilPerYear {
		seen[y] = true
	}
	for y := range r.CapexPerYear {
		seen[y] = true
	}
	for y := range r.StartsPerYear {
		seen[y] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
