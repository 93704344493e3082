package settlement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// Spatial reference definitions used for latitude derivation.
const (
	GeographicProj  = "+proj=longlat +datum=WGS84 +no_defs"
	WebMercatorProj = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"
)

// ProjFromCRS maps a CRS name as found in GeoJSON ("EPSG:4326",
// "urn:ogc:def:crs:EPSG::32631", "urn:ogc:def:crs:OGC:1.3:CRS84") to a proj4
// definition. Strings starting with "+proj=" are returned unchanged.
func ProjFromCRS(name string) (string, error) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "+proj=") {
		return name, nil
	}
	upper := strings.ToUpper(name)
	if strings.HasSuffix(upper, "CRS84") {
		return GeographicProj, nil
	}

	i := strings.LastIndex(upper, ":")
	if i < 0 || !strings.Contains(upper, "EPSG") {
		return "", fmt.Errorf("unrecognised CRS %q", name)
	}
	code, err := strconv.Atoi(upper[i+1:])
	if err != nil {
		return "", fmt.Errorf("unrecognised CRS %q", name)
	}

	switch {
	case code == 4326:
		return GeographicProj, nil
	case code == 3857 || code == 900913:
		return WebMercatorProj, nil
	case code > 32600 && code <= 32660:
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", code-32600), nil
	case code > 32700 && code <= 32760:
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", code-32700), nil
	}
	return "", fmt.Errorf("unsupported EPSG code %d; pass a proj4 definition instead", code)
}

// Projection converts settlement geometries in a source reference system to
// geographic latitude. A nil *Projection treats coordinates as already
// planar lon/lat.
type Projection struct {
	geographic bool
	toGeo      proj.Transformer
	toMerc     proj.Transformer
	mercToGeo  proj.Transformer
}

// NewProjection prepares the transforms for geometries defined in def
// (a proj4 string).
func NewProjection(def string) (*Projection, error) {
	src, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("parsing source projection: %w", err)
	}
	geo, err := proj.Parse(GeographicProj)
	if err != nil {
		return nil, fmt.Errorf("parsing geographic projection: %w", err)
	}
	merc, err := proj.Parse(WebMercatorProj)
	if err != nil {
		return nil, fmt.Errorf("parsing web mercator projection: %w", err)
	}

	p := &Projection{geographic: src.Name == "longlat"}
	if p.toGeo, err = src.NewTransform(geo); err != nil {
		return nil, fmt.Errorf("source to geographic: %w", err)
	}
	if p.toMerc, err = src.NewTransform(merc); err != nil {
		return nil, fmt.Errorf("source to web mercator: %w", err)
	}
	if p.mercToGeo, err = merc.NewTransform(geo); err != nil {
		return nil, fmt.Errorf("web mercator to geographic: %w", err)
	}
	return p, nil
}

// Latitude returns the geographic latitude of a point, or of the centroid
// of a polygonal geometry. Centroids are taken in Web Mercator so they are
// not skewed by degree-space distortion.
func (p *Projection) Latitude(g geom.Geom) (float64, error) {
	switch v := g.(type) {
	case geom.Point:
		return p.pointLatitude(v)
	case *geom.Point:
		return p.pointLatitude(*v)
	case geom.Polygonal:
		return p.centroidLatitude(v)
	case nil:
		return 0, ErrNullGeometry
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
}

func (p *Projection) pointLatitude(pt geom.Point) (float64, error) {
	if p == nil || p.geographic {
		return pt.Y, nil
	}
	_, lat, err := p.toGeo(pt.X, pt.Y)
	if err != nil {
		return 0, err
	}
	return lat, nil
}

func (p *Projection) centroidLatitude(poly geom.Polygonal) (float64, error) {
	if p == nil {
		return poly.Centroid().Y, nil
	}
	projected, err := poly.Transform(p.toMerc)
	if err != nil {
		return 0, err
	}
	pp, ok := projected.(geom.Polygonal)
	if !ok {
		return 0, fmt.Errorf("%w: %T after projection", ErrUnsupportedGeometry, projected)
	}
	c := pp.Centroid()
	_, lat, err := p.mercToGeo(c.X, c.Y)
	if err != nil {
		return 0, err
	}
	return lat, nil
}
