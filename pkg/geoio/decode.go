// Package geoio reads settlement collections from GeoJSON and writes planned
// collections as GeoJSON or CSV.
package geoio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/geom/encoding/geojson"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// DefaultCRS applies to collections without a crs member (RFC 7946).
const DefaultCRS = "urn:ogc:def:crs:OGC:1.3:CRS84"

// Options controls decoding.
type Options struct {
	// CRS overrides the collection's crs member. It may be an EPSG name or
	// a proj4 definition.
	CRS string

	// DropNullGeometry skips features without geometry instead of failing.
	DropNullGeometry bool
}

// Collection is a decoded settlement collection.
type Collection struct {
	// CRS is the reference system name the coordinates are expressed in.
	CRS     string
	Records []settlement.Record

	// Skipped counts features dropped for null geometry.
	Skipped int
}

type featureCollection struct {
	Type     string    `json:"type"`
	CRS      *namedCRS `json:"crs,omitempty"`
	Features []feature `json:"features"`
}

type namedCRS struct {
	Type       string `json:"type"`
	Properties struct {
		Name string `json:"name"`
	} `json:"properties"`
}

type feature struct {
	Type       string          `json:"type"`
	ID         json.RawMessage `json:"id,omitempty"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// ReadFile decodes the GeoJSON file at path.
func ReadFile(path string, opts Options) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening settlements: %w", err)
	}
	defer f.Close()
	return Decode(f, opts)
}

// Decode reads a GeoJSON FeatureCollection of settlements. Missing optional
// properties take the settlement defaults. The identifier falls back to the
// feature id and then to the feature index.
func Decode(r io.Reader, opts Options) (*Collection, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("parsing GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected a FeatureCollection, got %q", fc.Type)
	}

	crsName := opts.CRS
	if crsName == "" && fc.CRS != nil {
		crsName = fc.CRS.Properties.Name
	}
	if crsName == "" {
		crsName = DefaultCRS
	}
	def, err := settlement.ProjFromCRS(crsName)
	if err != nil {
		return nil, err
	}
	proj, err := settlement.NewProjection(def)
	if err != nil {
		return nil, err
	}

	c := &Collection{CRS: crsName, Records: make([]settlement.Record, 0, len(fc.Features))}
	for i, f := range fc.Features {
		in, err := f.input(i)
		if err != nil {
			return nil, err
		}
		if in.Geometry == nil && opts.DropNullGeometry {
			c.Skipped++
			continue
		}
		rec, err := settlement.New(in, proj)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		c.Records = append(c.Records, rec)
	}
	return c, nil
}

func (f *feature) input(index int) (settlement.Input, error) {
	in := settlement.Input{ID: f.identifier(index)}
	where := fmt.Sprintf("feature %d (%s)", index, in.ID)

	pop, ok, err := number(f.Properties, settlement.ColPopulation)
	if err != nil {
		return in, fmt.Errorf("%s: %w", where, err)
	}
	if !ok {
		return in, fmt.Errorf("%s: %w: %s", where, settlement.ErrMissingColumn, settlement.ColPopulation)
	}
	in.Population = int(math.Round(pop))

	if g := bytes.TrimSpace(f.Geometry); len(g) > 0 && !bytes.Equal(g, []byte("null")) {
		in.Geometry, err = geojson.Decode(g)
		if err != nil {
			return in, fmt.Errorf("%s: decoding geometry: %w", where, err)
		}
	}

	// Infrastructure distances that are present but null mean "unknown" and
	// take NullDistanceKm; absent columns keep the record defaults.
	floats := []struct {
		col    string
		dst    **float64
		ifNull *float64
	}{
		{settlement.ColLatitude, &in.Latitude, nil},
		{settlement.ColRWI, &in.RWI, nil},
		{settlement.ColNightlight, &in.Nightlight, nil},
		{settlement.ColDistSubstation, &in.DistSubstation, settlement.Ptr(settlement.NullDistanceKm)},
		{settlement.ColDistTransmission, &in.DistTransmission, settlement.Ptr(settlement.NullDistanceKm)},
		{settlement.ColDistRoad, &in.DistRoad, settlement.Ptr(settlement.NullDistanceKm)},
		{settlement.ColDistWater, &in.DistWater, nil},
		{settlement.ColDistHub, &in.DistHub, nil},
	}
	for _, fl := range floats {
		v, ok, err := number(f.Properties, fl.col)
		if err != nil {
			return in, fmt.Errorf("%s: %w", where, err)
		}
		switch {
		case ok:
			*fl.dst = settlement.Ptr(v)
		case fl.ifNull != nil && isNull(f.Properties, fl.col):
			*fl.dst = fl.ifNull
		}
	}

	ints := []struct {
		col string
		dst **int
	}{
		{settlement.ColNumBuildings, &in.NumBuildings},
		{settlement.ColHealthFacilities, &in.HealthFacilities},
		{settlement.ColEducationFacilities, &in.EducationFacilities},
	}
	for _, it := range ints {
		v, ok, err := number(f.Properties, it.col)
		if err != nil {
			return in, fmt.Errorf("%s: %w", where, err)
		}
		if ok {
			*it.dst = settlement.Ptr(int(math.Round(v)))
		}
	}
	return in, nil
}

func (f *feature) identifier(index int) string {
	if v, ok := f.Properties[settlement.ColID]; ok && v != nil {
		switch id := v.(type) {
		case string:
			if id != "" {
				return id
			}
		case float64:
			return strconv.FormatFloat(id, 'f', -1, 64)
		}
	}
	if len(f.ID) > 0 && !bytes.Equal(f.ID, []byte("null")) {
		var s string
		if err := json.Unmarshal(f.ID, &s); err == nil && s != "" {
			return s
		}
		var n float64
		if err := json.Unmarshal(f.ID, &n); err == nil {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return strconv.Itoa(index)
}

// isNull reports whether key is present with a JSON null value.
func isNull(props map[string]any, key string) bool {
	v, ok := props[key]
	return ok && v == nil
}

// number reads a numeric property. Absent and null values report ok=false.
// Booleans read as 0/1 and numeric strings are parsed.
func number(props map[string]any, col string) (float64, bool, error) {
	v, ok := props[col]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch x := v.(type) {
	case float64:
		return x, true, nil
	case bool:
		if x {
			return 1, true, nil
		}
		return 0, true, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("column %s: %q is not a number", col, x)
		}
		return f, true, nil
	}
	return 0, false, fmt.Errorf("column %s: unsupported value %v", col, v)
}
