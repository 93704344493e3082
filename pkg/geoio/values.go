package geoio

import (
	"math"
	"strconv"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// row returns r's attributes in settlement.OutputColumns order. Values are
// string, int, float64, bool or nil.
func row(r *settlement.Record) []any {
	var buildings any
	if r.HasBuildings {
		buildings = r.NumBuildings
	}
	return []any{
		r.ID, r.Population, buildings, r.Latitude,
		r.RWI, r.Nightlight,
		r.DistSubstation, r.DistTransmission, r.DistRoad, r.DistWater, r.DistHub,
		r.HealthFacilities, r.EducationFacilities,
		r.IsUrban, r.Households, int(r.Tier),
		r.DemRes, r.DemComm, r.DemAgri, r.DemPub,
		r.ProjectedDemand, r.ProjectedPeak,
		r.LCOEGrid, r.LCOEMiniGrid, r.LCOESHS,
		r.CapexGrid, r.CapexMiniGrid, r.CapexSHS,
		string(r.OptimalTech), r.Investment,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// text formats a row value for CSV. Missing and non-finite values are empty.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if !finite(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

// jsonValue maps a row value to something encoding/json writes faithfully.
// Non-finite floats become null.
func jsonValue(v any) any {
	if f, ok := v.(float64); ok && !finite(f) {
		return nil
	}
	return v
}
