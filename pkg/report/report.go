// Package report aggregates a planned settlement collection by technology.
package report

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// TotalLabel names the all-technology row.
const TotalLabel = "Total"

// TechSummary aggregates the settlements assigned to one technology.
// LCOE statistics use the LCOE of the selected technology and skip
// non-finite values; they are zero when nothing finite remains.
type TechSummary struct {
	Tech        string          `json:"tech"`
	Settlements int             `json:"settlements"`
	Population  int             `json:"population"`
	Households  int             `json:"households"`
	DemandKWh   float64         `json:"demand_kwh"`
	Investment  decimal.Decimal `json:"investment"`
	MeanLCOE    float64         `json:"mean_lcoe"`
	MedianLCOE  float64         `json:"median_lcoe"`
}

// Share is the fraction of all settlements this row covers.
func (t TechSummary) Share(total TechSummary) float64 {
	if total.Settlements == 0 {
		return 0
	}
	return float64(t.Settlements) / float64(total.Settlements)
}

// Summary is the plan-level rollup.
type Summary struct {
	ByTech []TechSummary `json:"by_tech"`
	Total  TechSummary   `json:"total"`

	// Skipped counts input features dropped before planning.
	Skipped int `json:"skipped,omitempty"`
}

// Tech returns the row for t.
func (s *Summary) Tech(t settlement.Tech) TechSummary {
	for _, ts := range s.ByTech {
		if ts.Tech == string(t) {
			return ts
		}
	}
	return TechSummary{Tech: string(t), Investment: decimal.Zero}
}

// Summarize groups records by their selected technology. Every technology
// gets a row, in settlement.Techs order, even when nothing selected it.
func Summarize(records []settlement.Record) *Summary {
	groups := make(map[settlement.Tech][]*settlement.Record, len(settlement.Techs))
	all := make([]*settlement.Record, 0, len(records))
	for i := range records {
		r := &records[i]
		groups[r.OptimalTech] = append(groups[r.OptimalTech], r)
		all = append(all, r)
	}

	s := &Summary{}
	for _, t := range settlement.Techs {
		s.ByTech = append(s.ByTech, aggregate(string(t), groups[t]))
	}
	s.Total = aggregate(TotalLabel, all)
	return s
}

func aggregate(label string, records []*settlement.Record) TechSummary {
	ts := TechSummary{Tech: label, Settlements: len(records), Investment: decimal.Zero}

	demand := make([]float64, 0, len(records))
	lcoes := make([]float64, 0, len(records))
	for _, r := range records {
		ts.Population += r.Population
		ts.Households += r.Households
		demand = append(demand, r.ProjectedDemand)
		ts.Investment = ts.Investment.Add(money(r.Investment))
		if v := r.LCOE(r.OptimalTech); !math.IsNaN(v) && !math.IsInf(v, 0) {
			lcoes = append(lcoes, v)
		}
	}
	ts.DemandKWh = floats.Sum(demand)

	if len(lcoes) > 0 {
		sort.Float64s(lcoes)
		ts.MeanLCOE = stat.Mean(lcoes, nil)
		ts.MedianLCOE = stat.Quantile(0.5, stat.Empirical, lcoes, nil)
	}
	return ts
}

// money rounds a dollar amount to cents.
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}
