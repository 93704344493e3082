package params

import (
	"errors"
	"fmt"
)

// FieldError is a failed construction check on one parameter.
type FieldError struct {
	Path     string
	Value    any
	Expected string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %v, expected %s", e.Path, e.Value, e.Expected)
}

// New validates c and returns it. The returned error joins one *FieldError
// per failed check.
func New(c *Config) (*Config, error) {
	if errs := c.Check(); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(joined...))
	}
	return c, nil
}

// Check runs every construction check and returns the failures in a
// stable order.
func (c *Config) Check() []*FieldError {
	var errs []*FieldError
	fail := func(path string, value any, expected string) {
		errs = append(errs, &FieldError{Path: path, Value: value, Expected: expected})
	}
	positive := func(path string, v float64) {
		if v <= 0 {
			fail(path, v, "> 0")
		}
	}
	nonNegative := func(path string, v float64) {
		if v < 0 {
			fail(path, v, ">= 0")
		}
	}
	positiveInt := func(path string, v int) {
		if v <= 0 {
			fail(path, v, "> 0")
		}
	}

	p := c.Planning
	if p.DiscountRate <= 0 || p.DiscountRate >= 1 {
		fail("planning.discount_rate", p.DiscountRate, "0 < rate < 1")
	}
	positiveInt("planning.horizon_years", p.HorizonYears)
	positive("planning.urban_hh_size", p.UrbanHHSize)
	positive("planning.rural_hh_size", p.RuralHHSize)
	nonNegative("planning.target_uptake_rate", p.TargetUptakeRate)
	nonNegative("planning.urban_uptake_rate", p.UrbanUptakeRate)

	d := c.Demand
	for i, lf := range d.TierLoadFactor {
		positive(fmt.Sprintf("demand.tier_lf.%d", i+1), lf)
	}
	for i, kwh := range d.TierKWh {
		nonNegative(fmt.Sprintf("demand.tier_kwh.%d", i+1), kwh)
	}
	positive("demand.urban_sme_ratio", d.UrbanSMERatio)
	positive("demand.rural_sme_ratio", d.RuralSMERatio)
	if d.Tier1Below > d.Tier2Below {
		fail("demand.rwi_tier1_below", d.Tier1Below, fmt.Sprintf("<= rwi_tier2_below (%v)", d.Tier2Below))
	}
	positiveInt("demand.mill.divisor", d.Mill.Divisor)
	positiveInt("demand.irrigation.divisor", d.Irrigation.Divisor)
	positiveInt("demand.dryer.divisor", d.Dryer.Divisor)
	for _, ar := range []struct {
		name string
		rule AnchorRule
	}{{"mill", d.Mill}, {"irrigation", d.Irrigation}, {"dryer", d.Dryer}} {
		if ar.rule.MaxWaterKm != nil {
			nonNegative("demand."+ar.name+".max_water_km", *ar.rule.MaxWaterKm)
		}
	}

	g := c.Grid
	nonNegative("grid.mv_cost_per_km", g.MVCostPerKm)
	nonNegative("grid.lv_cost_per_km", g.LVCostPerKm)
	nonNegative("grid.substation_cost", g.SubstationCost)
	nonNegative("grid.transformer_cost", g.TransformerCost)
	nonNegative("grid.connection_cost", g.ConnectionCost)
	nonNegative("grid.energy_price_usd_kwh", g.EnergyPriceKWh)
	positive("grid.transformer_kva", g.TransformerKVA)
	if g.LossFactor < 0 || g.LossFactor >= 1 {
		fail("grid.loss_factor", g.LossFactor, "0 <= loss < 1")
	}
	positiveInt("grid.lifetime_years", g.LifetimeYears)

	m := c.MiniGrid
	positiveInt("minigrid.battery_lifetime_years", m.BatteryLifetimeYears)
	positiveInt("minigrid.project_lifetime_years", m.ProjectLifetimeYears)
	if m.BatteryLifetimeYears >= m.ProjectLifetimeYears {
		fail("minigrid.battery_lifetime_years", m.BatteryLifetimeYears,
			fmt.Sprintf("< project_lifetime_years (%d)", m.ProjectLifetimeYears))
	}
	positive("minigrid.solar_capacity_factor", m.SolarCapacityFactor)
	positive("minigrid.sys_efficiency", m.SysEfficiency)
	if m.BatteryDoD <= 0 || m.BatteryDoD > 1 {
		fail("minigrid.battery_dod", m.BatteryDoD, "0 < dod <= 1")
	}

	s := c.SHS
	if s.MaxSupportedTier < MinTier || s.MaxSupportedTier > MaxTier {
		fail("shs.max_supported_tier", s.MaxSupportedTier, fmt.Sprintf("%d-%d", MinTier, MaxTier))
	}
	positiveInt("shs.lifetime_years", s.LifetimeYears)
	for i, capKWh := range s.CapacityLimit {
		positive(fmt.Sprintf("shs.capacity_limit.%d", i+1), capKWh)
	}

	return errs
}
