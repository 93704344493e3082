package lcoe

import (
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/finance"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

const (
	daysPerYear = 365.0
	hoursPerDay = 24.0
)

// MiniGridCost itemizes a solar PV + battery mini-grid.
type MiniGridCost struct {
	PVKW               float64 `json:"pv_kw"`
	BatteryKWh         float64 `json:"battery_kwh"`
	PV                 float64 `json:"pv"`
	Battery            float64 `json:"battery"`
	BatteryReplacement float64 `json:"battery_replacement"`
	Inverter           float64 `json:"inverter"`
	Distribution       float64 `json:"distribution"`
	Capex              float64 `json:"capex"`
	LCOE               float64 `json:"lcoe"`
}

// MiniGrid sizes and prices an isolated mini-grid for r. Battery
// replacements over the project life are discounted into the capital cost.
func MiniGrid(r *settlement.Record, p *params.Config) MiniGridCost {
	mg := p.MiniGrid
	rate := p.Planning.DiscountRate
	daily := r.ProjectedDemand / daysPerYear

	c := MiniGridCost{
		PVKW:       daily / (mg.SolarCapacityFactor * hoursPerDay * mg.SysEfficiency) * mg.PVOversizing,
		BatteryKWh: daily / mg.BatteryDoD,
	}
	c.PV = c.PVKW * mg.PVCostPerKW
	c.Battery = c.BatteryKWh * mg.BatteryCostPerKWh
	c.BatteryReplacement = finance.ReplacementNPV(c.Battery, rate, mg.BatteryLifetimeYears, mg.ProjectLifetimeYears)
	c.Inverter = r.ProjectedPeak * mg.InverterMargin * mg.InverterCostPerKW
	c.Distribution = float64(r.Households) * (mg.ConnectionCost + mg.LVReticulationFactor*p.Grid.LVCostPerKm)
	c.Capex = c.PV + c.Battery + c.BatteryReplacement + c.Inverter + c.Distribution

	c.LCOE = finance.Annualize(c.Capex, rate, mg.ProjectLifetimeYears, mg.OMRate) / r.ProjectedDemand
	return c
}
