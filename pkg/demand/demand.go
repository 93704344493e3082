// Package demand estimates settlement electricity demand with a simplified
// Multi-Tier Framework and projects it over the planning horizon.
package demand

import (
	"math"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// HoursPerYear converts annual energy to average power.
const HoursPerYear = 8760.0

// Commercial "gravity" toward the nearest hub: 1 + gravityPull/(d+1),
// clipped to [gravityMin, gravityMax].
const (
	gravityPull = 20.0
	gravityMin  = 1.0
	gravityMax  = 2.5
)

// Estimate fills the classification and demand fields of every record.
// Records are independent; callers may split the slice across goroutines.
func Estimate(records []settlement.Record, p *params.Config) {
	growth := GrowthMultiplier(p.Planning)
	for i := range records {
		estimate(&records[i], p, growth)
	}
}

// estimate fills one record. An empty settlement still counts as one
// household but has no demand of any kind, whatever its buildings or
// facilities.
func estimate(r *settlement.Record, p *params.Config, growth float64) {
	r.IsUrban = IsUrban(r, p.Planning)
	r.Households = Households(r.Population, r.IsUrban, p.Planning)
	r.Tier = WealthTier(r.RWI, r.Nightlight, p.Demand)
	if r.Population == 0 {
		r.DemRes, r.DemComm, r.DemAgri, r.DemPub = 0, 0, 0, 0
		r.ProjectedDemand, r.ProjectedPeak = 0, 0
		return
	}

	r.DemAgri = agriculturalDemand(r, p.Demand)
	r.DemComm = commercialDemand(r, p.Demand)
	r.DemRes = residentialDemand(r, p)
	r.DemPub = float64(r.HealthFacilities)*p.Demand.AnchorLoads.Health +
		float64(r.EducationFacilities)*p.Demand.AnchorLoads.Education

	r.ProjectedDemand = r.TotalInitialDemand() * growth
	r.ProjectedPeak = r.ProjectedDemand / HoursPerYear / p.Demand.TierLoadFactor.At(int(r.Tier))
}

// IsUrban classifies a settlement by population or building count.
func IsUrban(r *settlement.Record, p params.Planning) bool {
	return r.Population > p.UrbanThresholdPop || r.NumBuildings > p.UrbanBuildingThreshold
}

// Households is ceil(population / household size), never below one.
func Households(population int, urban bool, p params.Planning) int {
	size := p.RuralHHSize
	if urban {
		size = p.UrbanHHSize
	}
	return max(int(math.Ceil(float64(population)/size)), 1)
}

// WealthTier assigns a tier from the relative wealth index. Detected
// nightlights lift the tier to at least 2.
func WealthTier(rwi float64, nightlight bool, p params.Demand) settlement.Tier {
	tier := settlement.Tier3
	switch {
	case rwi < p.Tier1Below:
		tier = settlement.Tier1
	case rwi < p.Tier2Below:
		tier = settlement.Tier2
	}
	if nightlight && tier < settlement.Tier2 {
		tier = settlement.Tier2
	}
	return tier
}

// GrowthMultiplier compounds population and wealth growth over the horizon.
func GrowthMultiplier(p params.Planning) float64 {
	combined := (1 + p.PopGrowthRate) * (1 + p.WealthGrowthRate)
	return math.Pow(combined, float64(p.HorizonYears))
}

// Gravity scales SME density up near a commercial hub.
func Gravity(distHubKm float64) float64 {
	g := 1 + gravityPull/(distHubKm+1)
	return math.Min(math.Max(g, gravityMin), gravityMax)
}

func commercialDemand(r *settlement.Record, p params.Demand) float64 {
	density := p.RuralSMERatio
	if r.IsUrban {
		density = p.UrbanSMERatio
	}
	base := float64(r.Households)
	if r.HasBuildings {
		base = float64(r.NumBuildings)
	}
	smes := math.Max(math.Floor(base/density*Gravity(r.DistHub)), 0)
	return smes * p.AnchorLoads.SME
}

func residentialDemand(r *settlement.Record, p *params.Config) float64 {
	uptake := p.Planning.TargetUptakeRate
	if r.IsUrban {
		uptake = p.Planning.UrbanUptakeRate
	}
	return float64(r.Households) * p.Demand.TierKWh.At(int(r.Tier)) * uptake
}
