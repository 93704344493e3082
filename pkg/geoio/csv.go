package geoio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// WriteCSV writes records as a table with a header of
// settlement.OutputColumns. Geometry is omitted.
func WriteCSV(w io.Writer, records []settlement.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(settlement.OutputColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	line := make([]string, len(settlement.OutputColumns))
	for i := range records {
		for j, v := range row(&records[i]) {
			line[j] = text(v)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("writing settlement %s: %w", records[i].ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
