package config

import (
	"github.com/kilianp07/wellplan/core/cost"
)

// CapexConfig prices well construction.
type CapexConfig struct {
	// BuildCostPerMeter maps composite well type codes to per-meter rates.
	BuildCostPerMeter map[string]float64 `json:"build_cost_per_meter"`
	EquipmentCost     float64            `json:"equipment_cost"`
}

// OpexConfig prices monthly operations.
type OpexConfig struct {
	OilCostPerTon   float64 `json:"oil_cost_per_ton"`
	WaterCostPerTon float64 `json:"water_cost_per_ton"`
	RepairPerYear   float64 `json:"repair_per_year"`
	MaintainPerYear float64 `json:"maintain_per_year"`
}

// CostConfig parametrizes the NPV cost function.
type CostConfig struct {
	OilPricePerTon   float64     `json:"oil_price_per_ton"`
	DiscountRate     float64     `json:"discount_rate"`
	TravelCostPerDay float64     `json:"travel_cost_per_day"`
	Capex            CapexConfig `json:"capex"`
	Opex             OpexConfig  `json:"opex"`
}

// SetDefaults applies the standard discount rate and travel tariff.
func (c *CostConfig) SetDefaults() {
	if c.DiscountRate == 0 {
		c.DiscountRate = 0.125
	}
	if c.TravelCostPerDay == 0 {
		c.TravelCostPerDay = 1_500_000
	}
}

// BuildFunction assembles the NPV cost function for the given project start.
func (c CostConfig) BuildFunction(planner PlannerConfig) *cost.NPV {
	start, _ := planner.Horizon()
	capex := cost.BaseCapex{
		BuildCostPerMeter: c.Capex.BuildCostPerMeter,
		EquipmentCost:     c.Capex.EquipmentCost,
	}
	opex := cost.BaseOpex{
		OilCostPerTon:   c.Opex.OilCostPerTon,
		WaterCostPerTon: c.Opex.WaterCostPerTon,
		RepairPerYear:   c.Opex.RepairPerYear,
		MaintainPerYear: c.Opex.MaintainPerYear,
	}
	fn := cost.NewNPV(c.OilPricePerTon, start, capex, opex)
	fn.DiscountRate = c.DiscountRate
	fn.TravelCostPerDay = c.TravelCostPerDay
	return fn
}
