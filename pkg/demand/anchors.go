package demand

import (
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// Anchor identifies an agricultural anchor load.
type Anchor string

const (
	AnchorMill       Anchor = "mill"
	AnchorIrrigation Anchor = "irrigation"
	AnchorDryer      Anchor = "dryer"
)

// AnchorContribution is the demand one eligible anchor adds to a settlement.
type AnchorContribution struct {
	Anchor Anchor
	Units  int
	KWh    float64
}

// AgriculturalAnchors returns the contributions of every anchor the
// settlement qualifies for. The rules are independent and may all apply.
// r.IsUrban must already be set.
func AgriculturalAnchors(r *settlement.Record, p params.Demand) []AnchorContribution {
	rules := []struct {
		anchor Anchor
		rule   params.AnchorRule
		load   float64
	}{
		{AnchorMill, p.Mill, p.AnchorLoads.Mill},
		{AnchorIrrigation, p.Irrigation, p.AnchorLoads.Irrigation},
		{AnchorDryer, p.Dryer, p.AnchorLoads.Dryer},
	}

	var out []AnchorContribution
	for _, ar := range rules {
		if !eligible(r, ar.rule) {
			continue
		}
		units := max(r.Population/ar.rule.Divisor, 1)
		out = append(out, AnchorContribution{
			Anchor: ar.anchor,
			Units:  units,
			KWh:    float64(units) * ar.load,
		})
	}
	return out
}

func eligible(r *settlement.Record, rule params.AnchorRule) bool {
	if r.Population <= rule.MinPopulation {
		return false
	}
	if rule.RuralOnly && r.IsUrban {
		return false
	}
	if rule.MaxWaterKm != nil && !(r.DistWater < *rule.MaxWaterKm) {
		return false
	}
	if rule.MinLatitude != nil && !(r.Latitude > *rule.MinLatitude) {
		return false
	}
	return true
}

func agriculturalDemand(r *settlement.Record, p params.Demand) float64 {
	total := 0.0
	for _, c := range AgriculturalAnchors(r, p) {
		total += c.KWh
	}
	return total
}
