package settlement

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"
)

// Input contract violations. Loaders wrap these with the offending record.
var (
	ErrMissingColumn       = errors.New("missing required column")
	ErrNegativePopulation  = errors.New("negative population")
	ErrNullGeometry        = errors.New("null geometry")
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
)

// Defaults applied to absent optional attributes.
const (
	DefaultDistSubstationKm   = 999.0
	DefaultDistTransmissionKm = 999.0
	DefaultDistRoadKm         = 0.0
	DefaultDistWaterKm        = 99.0
	DefaultDistHubKm          = 30.0
)

// NullDistanceKm replaces a present but null substation, transmission or
// road distance. Unknown infrastructure is treated as far away.
const NullDistanceKm = 999.0

// Tier is an MTF service tier.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// Tech is an electrification technology.
type Tech string

const (
	TechGrid     Tech = "Grid"
	TechMiniGrid Tech = "MiniGrid"
	TechSHS      Tech = "SHS"
)

// Techs lists the technologies in tie-break preference order.
var Techs = []Tech{TechGrid, TechMiniGrid, TechSHS}

// Input is a settlement as read from a source. Nil optional fields take the
// package defaults when the record is built.
type Input struct {
	ID         string
	Population int
	Geometry   geom.Geom

	Latitude            *float64
	NumBuildings        *int
	RWI                 *float64
	Nightlight          *float64
	DistSubstation      *float64
	DistTransmission    *float64
	DistRoad            *float64
	DistWater           *float64
	DistHub             *float64
	HealthFacilities    *int
	EducationFacilities *int
}

// Record is one settlement. Input attributes are resolved once by New; the
// remaining fields are filled by the demand and LCOE models.
type Record struct {
	ID         string
	Population int
	Geometry   geom.Geom
	Latitude   float64

	NumBuildings        int
	HasBuildings        bool
	RWI                 float64
	Nightlight          bool
	DistSubstation      float64
	DistTransmission    float64
	DistRoad            float64
	DistWater           float64
	DistHub             float64
	HealthFacilities    int
	EducationFacilities int

	IsUrban    bool
	Households int
	Tier       Tier

	DemRes  float64
	DemComm float64
	DemAgri float64
	DemPub  float64

	ProjectedDemand float64
	ProjectedPeak   float64

	LCOEGrid     float64
	LCOEMiniGrid float64
	LCOESHS      float64

	CapexGrid     float64
	CapexMiniGrid float64
	CapexSHS      float64

	OptimalTech Tech
	Investment  float64
}

// New resolves an Input into a Record. The latitude comes from in.Latitude
// when set, otherwise from the geometry through proj (nil proj means the
// coordinates are used as-is).
func New(in Input, proj *Projection) (Record, error) {
	if in.Population < 0 {
		return Record{}, fmt.Errorf("%s: %w (%d)", label(in.ID), ErrNegativePopulation, in.Population)
	}
	if in.Geometry == nil {
		return Record{}, fmt.Errorf("%s: %w", label(in.ID), ErrNullGeometry)
	}

	r := Record{
		ID:                  in.ID,
		Population:          in.Population,
		Geometry:            in.Geometry,
		RWI:                 valueOr(in.RWI, 0),
		Nightlight:          in.Nightlight != nil && *in.Nightlight > 0,
		DistSubstation:      distance(in.DistSubstation, DefaultDistSubstationKm),
		DistTransmission:    distance(in.DistTransmission, DefaultDistTransmissionKm),
		DistRoad:            distance(in.DistRoad, DefaultDistRoadKm),
		DistWater:           distance(in.DistWater, DefaultDistWaterKm),
		DistHub:             distance(in.DistHub, DefaultDistHubKm),
		HealthFacilities:    max(valueOr(in.HealthFacilities, 0), 0),
		EducationFacilities: max(valueOr(in.EducationFacilities, 0), 0),
	}
	if in.NumBuildings != nil {
		r.NumBuildings = max(*in.NumBuildings, 0)
		r.HasBuildings = true
	}

	if in.Latitude != nil {
		r.Latitude = *in.Latitude
		return r, nil
	}
	lat, err := proj.Latitude(in.Geometry)
	if err != nil {
		return Record{}, fmt.Errorf("%s: deriving latitude: %w", label(in.ID), err)
	}
	r.Latitude = lat
	return r, nil
}

// TotalInitialDemand is the pre-growth sum of the four demand components.
func (r *Record) TotalInitialDemand() float64 {
	return r.DemRes + r.DemComm + r.DemAgri + r.DemPub
}

// HasAnchorLoads reports whether any non-residential demand is present.
func (r *Record) HasAnchorLoads() bool {
	return r.DemComm > 0 || r.DemAgri > 0 || r.DemPub > 0
}

// LCOE returns the levelized cost computed for t.
func (r *Record) LCOE(t Tech) float64 {
	switch t {
	case TechGrid:
		return r.LCOEGrid
	case TechMiniGrid:
		return r.LCOEMiniGrid
	case TechSHS:
		return r.LCOESHS
	}
	return 0
}

// Capex returns the capital cost computed for t.
func (r *Record) Capex(t Tech) float64 {
	switch t {
	case TechGrid:
		return r.CapexGrid
	case TechMiniGrid:
		return r.CapexMiniGrid
	case TechSHS:
		return r.CapexSHS
	}
	return 0
}

// Ptr returns a pointer to v, for filling optional Input fields.
func Ptr[T any](v T) *T {
	return &v
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// distance resolves an optional distance, clipping negatives to zero.
func distance(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return max(*p, 0)
}

func label(id string) string {
	if id == "" {
		return "settlement <unnamed>"
	}
	return "settlement " + id
}
