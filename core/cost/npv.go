package cost

import (
	"math"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

// NPV computes net present value: discounted monthly cash flows minus
// discounted capex minus crew travel cost.
type NPV struct {
	Capex            CapitalCost
	Opex             OperationalCost
	OilPricePerTon   float64
	ProjectStart     time.Time
	DiscountRate     float64
	TravelCostPerDay float64
}

// NewNPV creates an NPV function with the default discount rate and travel
// tariff.
func NewNPV(oilPricePerTon float64, projectStart time.Time, capex CapitalCost, opex OperationalCost) *NPV {
	return &NPV{
		Capex:            capex,
		Opex:             opex,
		OilPricePerTon:   oilPricePerTon,
		ProjectStart:     projectStart,
		DiscountRate:     0.125,
		TravelCostPerDay: 1_500_000,
	}
}

func (n *NPV) discount(cashFlow, years float64) float64 {
	return cashFlow / math.Pow(1+n.DiscountRate, years)
}

// Compute fills ctx.Cost and the travel_cost, cash_flow, capex and
// drill_team_penalty metadata entries. Cash flows are discounted with a
// fractional-year exponent: the well's launch offset from project start plus
// the month index over twelve.
func (n *NPV) Compute(ctx *model.WellPlanContext) error {
	shiftYears := ctx.NextAvailableDate().Sub(n.ProjectStart).Hours() / 24 / 365

	capex, err := n.Capex.Compute(ctx.Well)
	if err != nil {
		return err
	}

	water := make([]float64, len(ctx.OilProfile))
	for i := range water {
		if i < len(ctx.LiqProfile) {
			water[i] = ctx.LiqProfile[i] - ctx.OilProfile[i]
		}
	}
	monthlyOpex := n.Opex.Compute(ctx.OilProfile, water)

	discountedCashFlow := 0.0
	for month, oil := range ctx.OilProfile {
		opex := 0.0
		if month < len(monthlyOpex) {
			opex = monthlyOpex[month]
		}
		cashFlow := oil*n.OilPricePerTon - opex
		discountedCashFlow += n.discount(cashFlow, shiftYears+float64(month)/12)
	}
	discountedCapex := n.discount(capex, shiftYears)

	travelCost := 0.0
	if entry, ok := ctx.EntryByTask(model.TaskDrilling); ok {
		travelDays := int(entry.TravelTime.Hours() / 24)
		travelCost = float64(travelDays) * n.TravelCostPerDay
	}
	// Scaled by the number of competing drill teams on the cluster; used to
	// rank candidates, not part of the true cost.
	drillTeamPenalty := ctx.Metadata["team_count_drilling"] * travelCost

	ctx.SetCost(discountedCashFlow - discountedCapex - travelCost)
	ctx.Metadata["travel_cost"] = travelCost
	ctx.Metadata["cash_flow"] = discountedCashFlow
	ctx.Metadata["capex"] = discountedCapex
	ctx.Metadata["drill_team_penalty"] = drillTeamPenalty
	return nil
}
