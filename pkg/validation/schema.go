package validation

import (
	"fmt"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
)

// typicalLCOECeiling bounds the LCOEs ($/kWh) real technologies reach; the
// SHS infeasibility sentinel should sit above it.
const typicalLCOECeiling = 10.0

// ValidateParams checks a parameter set. Construction checks become errors;
// plausibility checks become warnings.
func ValidateParams(c *params.Config) *Report {
	r := NewReport()

	for _, fe := range c.Check() {
		r.AddError(Result{
			Level:    LevelParams,
			Message:  fmt.Sprintf("%s is out of range", fe.Path),
			Path:     fe.Path,
			Value:    fe.Value,
			Expected: fe.Expected,
		})
	}

	validateUptake(c.Planning, r)
	validateSentinel(c.SHS, r)
	validateHorizon(c, r)
	return r
}

func validateUptake(p params.Planning, r *Report) {
	if p.TargetUptakeRate > 1 {
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     "rural uptake above 100% connects more households than exist",
			Path:        "planning.target_uptake_rate",
			Value:       p.TargetUptakeRate,
			Expected:    "<= 1",
			Suggestions: []string{"Express uptake as a fraction, e.g. 0.85"},
		})
	}
	if p.UrbanUptakeRate > 1 {
		r.AddWarning(Result{
			Level:    LevelParams,
			Message:  "urban uptake above 100% connects more households than exist",
			Path:     "planning.urban_uptake_rate",
			Value:    p.UrbanUptakeRate,
			Expected: "<= 1",
		})
	}
	if p.UrbanUptakeRate < p.TargetUptakeRate {
		r.AddWarning(Result{
			Level:        LevelParams,
			Message:      "urban uptake is below rural uptake",
			Path:         "planning.urban_uptake_rate",
			Value:        p.UrbanUptakeRate,
			Expected:     fmt.Sprintf(">= %.2f", p.TargetUptakeRate),
			ConflictWith: "planning.target_uptake_rate",
		})
	}
}

func validateSentinel(s params.SHS, r *Report) {
	if s.InfeasibleLCOE <= typicalLCOECeiling {
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     "SHS infeasibility sentinel is within the range of real LCOEs and may be selected",
			Path:        "shs.infeasible_lcoe",
			Value:       s.InfeasibleLCOE,
			Expected:    fmt.Sprintf("> %.0f", typicalLCOECeiling),
			Suggestions: []string{"Use a large value such as 999.9"},
		})
	}
}

func validateHorizon(c *params.Config, r *Report) {
	if c.Planning.HorizonYears > c.MiniGrid.ProjectLifetimeYears {
		r.AddInfo(Result{
			Level:        LevelParams,
			Message:      "planning horizon outlasts the mini-grid project lifetime",
			Path:         "planning.horizon_years",
			Value:        c.Planning.HorizonYears,
			ConflictWith: "minigrid.project_lifetime_years",
		})
	}
}
