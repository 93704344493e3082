package geoio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ctessum/geom/encoding/geojson"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// Encode writes c as a GeoJSON FeatureCollection carrying every input and
// derived column. Properties keep settlement.OutputColumns order.
func Encode(w io.Writer, c *Collection) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`{"type":"FeatureCollection"`)
	if c.CRS != "" && c.CRS != DefaultCRS {
		crs, err := json.Marshal(c.CRS)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, `,"crs":{"type":"name","properties":{"name":%s}}`, crs)
	}
	bw.WriteString(`,"features":[`)

	for i := range c.Records {
		if i > 0 {
			bw.WriteByte(',')
		}
		if err := writeFeature(bw, &c.Records[i]); err != nil {
			return fmt.Errorf("settlement %s: %w", c.Records[i].ID, err)
		}
	}
	bw.WriteString("]}\n")
	return bw.Flush()
}

func writeFeature(bw *bufio.Writer, r *settlement.Record) error {
	bw.WriteString(`{"type":"Feature","geometry":`)
	if r.Geometry == nil {
		bw.WriteString("null")
	} else {
		g, err := geojson.Encode(r.Geometry)
		if err != nil {
			return fmt.Errorf("encoding geometry: %w", err)
		}
		bw.Write(g)
	}

	bw.WriteString(`,"properties":{`)
	for i, v := range row(r) {
		if i > 0 {
			bw.WriteByte(',')
		}
		key, err := json.Marshal(settlement.OutputColumns[i])
		if err != nil {
			return err
		}
		val, err := json.Marshal(jsonValue(v))
		if err != nil {
			return fmt.Errorf("column %s: %w", settlement.OutputColumns[i], err)
		}
		bw.Write(key)
		bw.WriteByte(':')
		bw.Write(val)
	}
	bw.WriteString("}}")
	return nil
}

// WriteFile encodes c to path.
func WriteFile(path string, c *Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
