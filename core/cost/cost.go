package cost

import (
	"fmt"

	"github.com/kilianp07/wellplan/core/model"
)

// CapitalCost estimates the one-off build cost of a well.
type CapitalCost interface {
	Compute(well model.Well) (float64, error)
}

// OperationalCost computes monthly operating expenses from production.
type OperationalCost interface {
	Compute(monthlyOil, monthlyWater []float64) []float64
}

// Function computes a candidate's cost and stores it on the context.
// Implementations are swappable at construction time.
type Function interface {
	Compute(ctx *model.WellPlanContext) error
}

// BaseCapex prices a well from a per-meter rate table keyed by well type plus
// a flat equipment cost.
type BaseCapex struct {
	BuildCostPerMeter map[string]float64
	EquipmentCost     float64
}

func (c BaseCapex) Compute(well model.Well) (float64, error) {
	rate, ok := c.BuildCostPerMeter[well.WellType]
	if !ok {
		return 0, fmt.Errorf("no capex rate for well type %q", well.WellType)
	}
	return rate*well.Length + c.EquipmentCost, nil
}

// BaseOpex prices monthly operations: per-ton lifting costs plus fixed
// repair and maintenance shares. Months without production cost nothing.
type BaseOpex struct {
	OilCostPerTon   float64
	WaterCostPerTon float64
	RepairPerYear   float64
	MaintainPerYear float64
}

func (o BaseOpex) Compute(monthlyOil, monthlyWater []float64) []float64 {
	n := len(monthlyOil)
	if len(monthlyWater) < n {
		n = len(monthlyWater)
	}
	repairMonthly := o.RepairPerYear / 12
	maintainMonthly := o.MaintainPerYear / 12
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		oil, water := monthlyOil[i], monthlyWater[i]
		if oil == 0 && water == 0 {
			continue
		}
		out[i] = oil*o.OilCostPerTon + water*o.WaterCostPerTon + repairMonthly + maintainMonthly
	}
	return out
}
