package pipeline

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/ctessum/geom"
	"go.uber.org/zap/zaptest"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// synthetic builds a spread of settlements from hamlets to towns.
func synthetic(t *testing.T, n int) []settlement.Record {
	t.Helper()
	records := make([]settlement.Record, 0, n)
	for i := 0; i < n; i++ {
		in := settlement.Input{
			ID:             fmt.Sprintf("S%04d", i),
			Population:     (i * 137) % 9000,
			Geometry:       geom.Point{X: 1.5 + float64(i%30)*0.05, Y: 6.2 + float64(i%60)*0.1},
			RWI:            settlement.Ptr(float64(i%13)/6 - 1),
			DistSubstation: settlement.Ptr(float64(i % 150)),
			DistRoad:       settlement.Ptr(float64(i % 25)),
			DistWater:      settlement.Ptr(float64(i % 7)),
			DistHub:        settlement.Ptr(float64(i % 50)),
		}
		if i%5 == 0 {
			in.HealthFacilities = settlement.Ptr(1)
		}
		r, err := settlement.New(in, nil)
		if err != nil {
			t.Fatalf("settlement.New(%d) failed: %v", i, err)
		}
		records = append(records, r)
	}
	return records
}

func TestParallelMatchesSequential(t *testing.T) {
	cfg := params.Defaults()
	seq := synthetic(t, 503)
	par := synthetic(t, 503)

	seqSummary := Run(seq, cfg, Options{Workers: 1})
	parSummary := Run(par, cfg, Options{Workers: 8, Logger: zaptest.NewLogger(t)})

	if !reflect.DeepEqual(seq, par) {
		for i := range seq {
			if !reflect.DeepEqual(seq[i], par[i]) {
				t.Fatalf("record %d differs:\nseq %+v\npar %+v", i, seq[i], par[i])
			}
		}
	}
	if !reflect.DeepEqual(seqSummary, parSummary) {
		t.Errorf("summaries differ:\nseq %+v\npar %+v", seqSummary, parSummary)
	}
}

func TestRunFillsEveryRecord(t *testing.T) {
	cfg := params.Defaults()
	records := synthetic(t, 120)
	summary := Run(records, cfg, Options{Workers: 4})

	for _, r := range records {
		if r.Population > 0 && (r.ProjectedDemand <= 0 || r.ProjectedPeak <= 0) {
			t.Errorf("%s: demand %v peak %v", r.ID, r.ProjectedDemand, r.ProjectedPeak)
		}
		if r.Investment != r.Capex(r.OptimalTech) {
			t.Errorf("%s: investment %v does not match %s capex", r.ID, r.Investment, r.OptimalTech)
		}
		for _, tech := range settlement.Techs {
			if v := r.LCOE(tech); !math.IsNaN(v) && v < r.LCOE(r.OptimalTech) {
				t.Errorf("%s: %s cheaper than %s", r.ID, tech, r.OptimalTech)
			}
		}
	}
	if summary.Total.Settlements != 120 {
		t.Errorf("summary settlements = %d, want 120", summary.Total.Settlements)
	}
}

func TestRunEmpty(t *testing.T) {
	summary := Run(nil, params.Defaults(), Options{Workers: 4})
	if summary.Total.Settlements != 0 {
		t.Errorf("settlements = %d, want 0", summary.Total.Settlements)
	}
}

func TestPartition(t *testing.T) {
	cases := []struct {
		n, workers int
		want       []Chunk
	}{
		{0, 4, nil},
		{10, 1, []Chunk{{0, 10}}},
		{10, 0, []Chunk{{0, 10}}},
		{10, 3, []Chunk{{0, 4}, {4, 8}, {8, 10}}},
		{3, 8, []Chunk{{0, 1}, {1, 2}, {2, 3}}},
		{8, 4, []Chunk{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
	}
	for _, tc := range cases {
		got := Partition(tc.n, tc.workers)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Partition(%d, %d) = %v, want %v", tc.n, tc.workers, got, tc.want)
		}
	}
}
