package lcoe

import (
	"math"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// Costs holds all three technology appraisals for one settlement.
type Costs struct {
	Grid     GridCost     `json:"grid"`
	MiniGrid MiniGridCost `json:"minigrid"`
	SHS      SHSCost      `json:"shs"`
}

// Appraise prices every technology for r. The demand fields of r must be set.
func Appraise(r *settlement.Record, p *params.Config) Costs {
	return Costs{
		Grid:     Grid(r, p),
		MiniGrid: MiniGrid(r, p),
		SHS:      SHS(r, p),
	}
}

// Select fills the LCOE, capex, technology and investment fields of every
// record. Records are independent; callers may split the slice across
// goroutines.
func Select(records []settlement.Record, p *params.Config) {
	for i := range records {
		Apply(&records[i], p)
	}
}

// Apply appraises r and records the least-cost technology.
func Apply(r *settlement.Record, p *params.Config) Costs {
	c := Appraise(r, p)
	r.LCOEGrid, r.CapexGrid = c.Grid.LCOE, c.Grid.Capex
	r.LCOEMiniGrid, r.CapexMiniGrid = c.MiniGrid.LCOE, c.MiniGrid.Capex
	r.LCOESHS, r.CapexSHS = c.SHS.LCOE, c.SHS.Capex

	r.OptimalTech = Cheapest(r)
	r.Investment = r.Capex(r.OptimalTech)
	return c
}

// Cheapest returns the technology with the lowest LCOE. Ties go to the
// earlier entry of settlement.Techs and a NaN LCOE never wins. When every
// LCOE is NaN the first technology is returned.
func Cheapest(r *settlement.Record) settlement.Tech {
	best := settlement.Techs[0]
	bestLCOE := math.NaN()
	for _, t := range settlement.Techs {
		v := r.LCOE(t)
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(bestLCOE) || v < bestLCOE {
			best, bestLCOE = t, v
		}
	}
	return best
}
