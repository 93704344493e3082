package lcoe

import (
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/demand"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// village is a demand-estimated rural settlement with no anchor loads.
func village() settlement.Record {
	return settlement.Record{
		ID:               "v",
		Population:       520,
		Households:       100,
		Tier:             settlement.Tier2,
		DemRes:           80000,
		ProjectedDemand:  100000,
		ProjectedPeak:    50,
		DistSubstation:   20,
		DistTransmission: 5,
		DistRoad:         15,
		DistWater:        99,
		DistHub:          30,
	}
}

func TestLeastCostSelection(t *testing.T) {
	cases := []struct {
		grid, mg, shs float64
		want          settlement.Tech
	}{
		{0.15, 0.30, 0.80, settlement.TechGrid},
		{0.40, 0.25, 0.80, settlement.TechMiniGrid},
		{0.90, 0.80, 0.10, settlement.TechSHS},
	}
	for i, tc := range cases {
		r := settlement.Record{LCOEGrid: tc.grid, LCOEMiniGrid: tc.mg, LCOESHS: tc.shs}
		if got := Cheapest(&r); got != tc.want {
			t.Errorf("settlement %d: optimal_tech = %s, want %s", i, got, tc.want)
		}
	}
}

func TestCheapestTiesAndNaN(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	cases := []struct {
		name          string
		grid, mg, shs float64
		want          settlement.Tech
	}{
		{"tie grid and mg", 0.3, 0.3, 0.5, settlement.TechGrid},
		{"tie mg and shs", 0.6, 0.3, 0.3, settlement.TechMiniGrid},
		{"all infinite", inf, inf, inf, settlement.TechGrid},
		{"nan grid", nan, 0.5, 0.3, settlement.TechSHS},
		{"nan everywhere but mg", nan, 0.9, nan, settlement.TechMiniGrid},
		{"all nan", nan, nan, nan, settlement.TechGrid},
		{"sentinel still wins", 1500, 1200, 999.9, settlement.TechSHS},
	}
	for _, tc := range cases {
		r := settlement.Record{LCOEGrid: tc.grid, LCOEMiniGrid: tc.mg, LCOESHS: tc.shs}
		if got := Cheapest(&r); got != tc.want {
			t.Errorf("%s: optimal_tech = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestGridCost(t *testing.T) {
	p := params.Defaults()
	r := village()
	c := Grid(&r, p)

	if c.DistanceKm != 20 {
		t.Errorf("distance = %v, want 20 (substation)", c.DistanceKm)
	}
	if c.TerrainFactor != 1.3 {
		t.Errorf("terrain factor = %v, want 1.3", c.TerrainFactor)
	}
	if !almostEqual(c.MVLine, 20*14000*1.3, 1e-6) {
		t.Errorf("mv line = %v, want %v", c.MVLine, 20*14000*1.3)
	}
	if !almostEqual(c.Distribution, 100*(0.05*5500+150), 1e-6) {
		t.Errorf("distribution = %v, want 42500", c.Distribution)
	}
	// ceil(50 * 0.6 / 45) = 1
	if c.Transformers != 1 || c.Transformer != 8000 {
		t.Errorf("transformers = %d ($%.0f), want 1 ($8000)", c.Transformers, c.Transformer)
	}
	if !almostEqual(c.Capex, 364000+42500+8000, 1e-6) {
		t.Errorf("capex = %v, want 414500", c.Capex)
	}

	crf := 0.08 * math.Pow(1.08, 40) / (math.Pow(1.08, 40) - 1)
	wantAnnual := 414500*(crf+0.02) + 100000/(1-0.18)*0.10
	if !almostEqual(c.Annual, wantAnnual, 1e-6) {
		t.Errorf("annual = %v, want %v", c.Annual, wantAnnual)
	}
	if !almostEqual(c.LCOE, wantAnnual/100000, 1e-12) {
		t.Errorf("lcoe = %v, want %v", c.LCOE, wantAnnual/100000)
	}
}

func TestGridDistanceViaTransmission(t *testing.T) {
	g := params.Defaults().Grid
	r := village()
	r.DistSubstation = 999
	r.DistTransmission = 2
	want := 2 + 500000.0/14000
	if d := GridDistance(&r, g); !almostEqual(d, want, 1e-9) {
		t.Errorf("distance = %v, want %v", d, want)
	}
}

func TestTerrainThreshold(t *testing.T) {
	g := params.Defaults().Grid
	for _, tc := range []struct {
		road, want float64
	}{{0, 1}, {10, 1}, {10.01, 1.3}, {40, 1.3}} {
		r := settlement.Record{DistRoad: tc.road}
		if f := TerrainFactor(&r, g); f != tc.want {
			t.Errorf("road %v km: terrain = %v, want %v", tc.road, f, tc.want)
		}
	}
}

func TestTransformersRoundUp(t *testing.T) {
	p := params.Defaults()
	r := village()
	r.ProjectedPeak = 80 // 80 * 0.6 / 45 = 1.07
	if c := Grid(&r, p); c.Transformers != 2 {
		t.Errorf("transformers = %d, want 2", c.Transformers)
	}
	r.ProjectedPeak = 0
	if c := Grid(&r, p); c.Transformers != 0 {
		t.Errorf("transformers at zero peak = %d, want 0", c.Transformers)
	}
}

func TestMiniGridCost(t *testing.T) {
	p := params.Defaults()
	r := village()
	c := MiniGrid(&r, p)

	daily := 100000 / 365.0
	if want := daily / (0.18 * 24 * 0.85) * 1.2; !almostEqual(c.PVKW, want, 1e-9) {
		t.Errorf("pv kw = %v, want %v", c.PVKW, want)
	}
	if want := daily / 0.8; !almostEqual(c.BatteryKWh, want, 1e-9) {
		t.Errorf("battery kwh = %v, want %v", c.BatteryKWh, want)
	}

	// Replaced in years 7 and 14 of a 20-year project.
	wantNPV := c.Battery/math.Pow(1.08, 7) + c.Battery/math.Pow(1.08, 14)
	if !almostEqual(c.BatteryReplacement, wantNPV, 1e-6) {
		t.Errorf("battery replacement = %v, want %v", c.BatteryReplacement, wantNPV)
	}
	if want := 50 * 1.25 * 180.0; !almostEqual(c.Inverter, want, 1e-9) {
		t.Errorf("inverter = %v, want %v", c.Inverter, want)
	}
	if want := 100 * (100 + 0.1*5500.0); !almostEqual(c.Distribution, want, 1e-9) {
		t.Errorf("distribution = %v, want %v", c.Distribution, want)
	}

	sum := c.PV + c.Battery + c.BatteryReplacement + c.Inverter + c.Distribution
	if !almostEqual(c.Capex, sum, 1e-6) {
		t.Errorf("capex = %v, want sum of parts %v", c.Capex, sum)
	}
	crf := 0.08 * math.Pow(1.08, 20) / (math.Pow(1.08, 20) - 1)
	if want := c.Capex * (crf + 0.03) / 100000; !almostEqual(c.LCOE, want, 1e-12) {
		t.Errorf("lcoe = %v, want %v", c.LCOE, want)
	}
}

func TestSHSCapacityCap(t *testing.T) {
	p := params.Defaults()
	r := village()
	// 1000 kWh per household demanded, tier 2 systems deliver 150.
	c := SHS(&r, p)
	if !c.Supported {
		t.Fatal("expected SHS to be supported")
	}
	if c.Energy != 100*150 {
		t.Errorf("energy = %v, want 15000", c.Energy)
	}
	if c.Capex != 100*250 {
		t.Errorf("capex = %v, want 25000", c.Capex)
	}
	crf := 0.08 * math.Pow(1.08, 5) / (math.Pow(1.08, 5) - 1)
	if want := 25000 * (crf + 0.05) / 15000; !almostEqual(c.LCOE, want, 1e-12) {
		t.Errorf("lcoe = %v, want %v", c.LCOE, want)
	}
}

func TestSHSSentinelRegardlessOfCosts(t *testing.T) {
	for _, cost := range []float64{0.01, 1, 250, 1e6} {
		p := params.Defaults()
		p.SHS.Costs = params.Tiers(cost, cost, cost)

		tooRich := village()
		tooRich.Tier = settlement.Tier3
		p.SHS.MaxSupportedTier = 2

		withMill := village()
		withMill.DemAgri = 4500

		withShop := village()
		withShop.DemComm = 600

		withClinic := village()
		withClinic.DemPub = 4000

		for _, r := range []settlement.Record{tooRich, withMill, withShop, withClinic} {
			c := SHS(&r, p)
			if c.Supported || c.LCOE != 999.9 {
				t.Errorf("cost %v tier %d comm %v agri %v pub %v: lcoe_shs = %v, want 999.9",
					cost, r.Tier, r.DemComm, r.DemAgri, r.DemPub, c.LCOE)
			}
		}
	}
}

func TestApplyInvestmentMatchesSelection(t *testing.T) {
	p := params.Defaults()
	rs := []settlement.Record{village(), village(), village()}
	rs[1].DistSubstation, rs[1].DistTransmission = 999, 999
	rs[2].ProjectedDemand, rs[2].DemRes, rs[2].ProjectedPeak = 3000, 3000, 1.5
	Select(rs, p)

	for i, r := range rs {
		if r.Investment != r.Capex(r.OptimalTech) {
			t.Errorf("record %d: investment = %v, want capex of %s = %v", i, r.Investment, r.OptimalTech, r.Capex(r.OptimalTech))
		}
		for _, tech := range settlement.Techs {
			if r.LCOE(tech) < r.LCOE(r.OptimalTech) {
				t.Errorf("record %d: %s lcoe %v beats selected %s %v", i, tech, r.LCOE(tech), r.OptimalTech, r.LCOE(r.OptimalTech))
			}
		}
	}
	if rs[1].OptimalTech == settlement.TechGrid {
		t.Errorf("remote settlement picked grid (lcoe %v)", rs[1].LCOEGrid)
	}
}

func TestZeroDemandFallsBackToGrid(t *testing.T) {
	p := params.Defaults()
	r := village()
	r.Population, r.Households = 0, 1
	r.DemRes, r.ProjectedDemand, r.ProjectedPeak = 0, 0, 0
	Apply(&r, p)

	if !math.IsInf(r.LCOEGrid, 1) || !math.IsInf(r.LCOEMiniGrid, 1) || !math.IsInf(r.LCOESHS, 1) {
		t.Errorf("lcoes = %v/%v/%v, want +Inf", r.LCOEGrid, r.LCOEMiniGrid, r.LCOESHS)
	}
	if r.OptimalTech != settlement.TechGrid {
		t.Errorf("optimal_tech = %s, want Grid", r.OptimalTech)
	}
	if r.Investment != r.CapexGrid {
		t.Errorf("investment = %v, want %v", r.Investment, r.CapexGrid)
	}
}

func TestEstimatedSettlementsSelectArgmin(t *testing.T) {
	p := params.Defaults()
	inputs := []settlement.Input{
		{ID: "town", Population: 12500, DistSubstation: settlement.Ptr(2.0), DistRoad: settlement.Ptr(1.0)},
		{ID: "village", Population: 600, DistSubstation: settlement.Ptr(60.0), DistWater: settlement.Ptr(1.0)},
		{ID: "hamlet", Population: 45, RWI: settlement.Ptr(-0.6), DistSubstation: settlement.Ptr(120.0), DistRoad: settlement.Ptr(25.0)},
	}
	var rs []settlement.Record
	for _, in := range inputs {
		in.Geometry = geom.Point{X: 2.5, Y: 9.0}
		r, err := settlement.New(in, nil)
		if err != nil {
			t.Fatal(err)
		}
		rs = append(rs, r)
	}
	demand.Estimate(rs, p)
	Select(rs, p)

	for _, r := range rs {
		switch r.OptimalTech {
		case settlement.TechGrid, settlement.TechMiniGrid, settlement.TechSHS:
		default:
			t.Fatalf("%s: unexpected tech %q", r.ID, r.OptimalTech)
		}
		for _, tech := range settlement.Techs {
			if r.LCOE(tech) < r.LCOE(r.OptimalTech) {
				t.Errorf("%s: %s is cheaper than selected %s", r.ID, tech, r.OptimalTech)
			}
		}
	}
	if rs[0].OptimalTech != settlement.TechGrid {
		t.Errorf("town near a substation: optimal_tech = %s, want Grid", rs[0].OptimalTech)
	}
	if rs[1].LCOESHS != p.SHS.InfeasibleLCOE {
		t.Errorf("village with a mill: lcoe_shs = %v, want sentinel", rs[1].LCOESHS)
	}
	if rs[2].OptimalTech != settlement.TechSHS {
		t.Errorf("remote hamlet: optimal_tech = %s, want SHS", rs[2].OptimalTech)
	}
}
