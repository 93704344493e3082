package lcoe

import (
	"math"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/finance"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// SHSCost prices one solar home system per household.
type SHSCost struct {
	Energy    float64 `json:"energy"`
	Capex     float64 `json:"capex"`
	LCOE      float64 `json:"lcoe"`
	Supported bool    `json:"supported"`
}

// SHS prices solar home systems for r. Delivered energy is capped per
// household by the tier's system capacity. When SHS cannot serve the
// settlement the LCOE is replaced by the configured sentinel; the capital
// cost is still reported.
func SHS(r *settlement.Record, p *params.Config) SHSCost {
	s := p.SHS
	tier := int(r.Tier)
	hh := float64(r.Households)

	c := SHSCost{
		Energy:    hh * math.Min(r.ProjectedDemand/hh, s.CapacityLimit.At(tier)),
		Capex:     hh * s.Costs.At(tier),
		Supported: SHSSupported(r, s),
	}
	if !c.Supported {
		c.LCOE = s.InfeasibleLCOE
		return c
	}
	c.LCOE = finance.Annualize(c.Capex, p.Planning.DiscountRate, s.LifetimeYears, s.OMRate) / c.Energy
	return c
}

// SHSSupported reports whether home systems can serve r: the tier is within
// reach and there is no commercial, agricultural or public load.
func SHSSupported(r *settlement.Record, s params.SHS) bool {
	return int(r.Tier) <= s.MaxSupportedTier && !r.HasAnchorLoads()
}
