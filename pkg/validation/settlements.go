package validation

import (
	"fmt"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// ValidateSettlements checks a decoded collection: duplicate identifiers and
// missing geometry are errors, empty settlements are noted.
func ValidateSettlements(records []settlement.Record) *Report {
	r := NewReport()
	if len(records) == 0 {
		r.AddWarning(Result{
			Level:   LevelSettlements,
			Message: "collection contains no settlements",
			Path:    "features",
		})
		return r
	}

	seen := make(map[string]int, len(records))
	empty := 0
	for i := range records {
		rec := &records[i]
		path := fmt.Sprintf("features[%d]", i)

		if first, dup := seen[rec.ID]; dup {
			r.AddError(Result{
				Level:        LevelSettlements,
				Message:      fmt.Sprintf("duplicate identifier %q", rec.ID),
				Path:         path + "." + settlement.ColID,
				Value:        rec.ID,
				ConflictWith: fmt.Sprintf("features[%d]", first),
				Suggestions:  []string{"Identifiers key the result tables and must be unique"},
			})
		} else {
			seen[rec.ID] = i
		}

		if rec.Geometry == nil {
			r.AddError(Result{
				Level:   LevelSettlements,
				Message: fmt.Sprintf("settlement %q has no geometry", rec.ID),
				Path:    path + "." + settlement.ColGeometry,
			})
		}
		if rec.Population == 0 {
			empty++
		}
	}

	if empty > 0 {
		r.AddInfo(Result{
			Level:   LevelSettlements,
			Message: fmt.Sprintf("%d settlements have zero population and zero demand", empty),
			Path:    settlement.ColPopulation,
			Value:   empty,
		})
	}
	return r
}
