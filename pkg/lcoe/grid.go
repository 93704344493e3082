// Package lcoe prices grid extension, solar mini-grids and solar home
// systems for each settlement and selects the least-cost option.
package lcoe

import (
	"math"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/finance"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// GridCost itemizes a grid extension.
type GridCost struct {
	DistanceKm    float64 `json:"distance_km"`
	TerrainFactor float64 `json:"terrain_factor"`
	MVLine        float64 `json:"mv_line"`
	Distribution  float64 `json:"distribution"`
	Transformers  int     `json:"transformers"`
	Transformer   float64 `json:"transformer"`
	Capex         float64 `json:"capex"`
	Annual        float64 `json:"annual"`
	LCOE          float64 `json:"lcoe"`
}

// GridDistance is the MV line length to the cheaper connection point: an
// existing substation, or the transmission line plus a new substation
// expressed as equivalent line length.
func GridDistance(r *settlement.Record, g params.Grid) float64 {
	substationPenalty := g.SubstationCost / g.MVCostPerKm
	return math.Min(r.DistSubstation, r.DistTransmission+substationPenalty)
}

// TerrainFactor raises MV line cost for settlements far from a main road.
func TerrainFactor(r *settlement.Record, g params.Grid) float64 {
	if r.DistRoad > g.TerrainRoadKm {
		return g.TerrainMultiplier
	}
	return 1.0
}

// Grid prices connecting r to the national grid.
func Grid(r *settlement.Record, p *params.Config) GridCost {
	g := p.Grid
	c := GridCost{
		DistanceKm:    GridDistance(r, g),
		TerrainFactor: TerrainFactor(r, g),
	}
	c.MVLine = c.DistanceKm * g.MVCostPerKm * c.TerrainFactor
	c.Distribution = float64(r.Households) * (g.LVLinePerHH*g.LVCostPerKm + g.ConnectionCost)
	c.Transformers = int(math.Ceil(r.ProjectedPeak * g.TransformerDiversity / g.TransformerKVA))
	c.Transformer = float64(c.Transformers) * g.TransformerCost
	c.Capex = c.MVLine + c.Distribution + c.Transformer

	purchased := r.ProjectedDemand / (1 - g.LossFactor) * g.EnergyPriceKWh
	c.Annual = finance.Annualize(c.Capex, p.Planning.DiscountRate, g.LifetimeYears, g.OMRate) + purchased
	c.LCOE = c.Annual / r.ProjectedDemand
	return c
}
