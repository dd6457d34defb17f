package pyrostex

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EquirectMap is a scalar field whose grid coordinates are an affine
// function of latitude and longitude: column 0 is longitude -Pi, the
// last column longitude Pi, row 0 latitude -Pi/2, the last row
// latitude Pi/2.
type EquirectMap struct {
	Field
}

// NewEquirectMap creates an equirectangular map of the given size.
func NewEquirectMap(width, height int, opts ...MapOption) (*EquirectMap, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("pyrostex: equirectangular map %dx%d needs at least 2x2 samples: %w", width, height, ErrInvalidArgument)
	}
	o := defaultMapOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := o.gridFor(width, height)
	if err != nil {
		return nil, err
	}
	return &EquirectMap{Field: newField(g, 0, 0, width, height)}, nil
}

// XYFromLatLng returns the grid coordinates of a latitude/longitude
// pair. The pair must lie within [-Pi/2, Pi/2] x [-Pi, Pi], else
// XYFromLatLng fails with ErrOutOfRange.
func (m *EquirectMap) XYFromLatLng(ll s2.LatLng) (float64, float64, error) {
	lat := ll.Lat.Radians()
	lon := ll.Lng.Radians()
	if lat < MinLat || lat > MaxLat || lon < MinLon || lon > MaxLon {
		return 0, 0, fmt.Errorf("pyrostex: lat/lng (%g,%g) outside projection domain: %w", lat, lon, ErrOutOfRange)
	}
	x := (lon - MinLon) / (2 * math.Pi) * float64(m.width-1)
	y := (lat - MinLat) / math.Pi * float64(m.height-1)
	return x, y, nil
}

// LatLngAt returns the latitude and longitude of a grid coordinate.
func (m *EquirectMap) LatLngAt(x, y float64) (s2.LatLng, error) {
	if x < 0 || x > float64(m.width-1) || y < 0 || y > float64(m.height-1) {
		return s2.LatLng{}, fmt.Errorf("pyrostex: coordinate (%g,%g) in %dx%d equirectangular map: %w", x, y, m.width, m.height, ErrOutOfRange)
	}
	lon := MinLon + x/float64(m.width-1)*2*math.Pi
	lat := MinLat + y/float64(m.height-1)*math.Pi
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}, nil
}

// VectorAt returns the direction vector of a grid coordinate.
func (m *EquirectMap) VectorAt(x, y float64) (r3.Vector, error) {
	ll, err := m.LatLngAt(x, y)
	if err != nil {
		return r3.Vector{}, err
	}
	return VectorFromLatLng(ll), nil
}

// ValueAtLatLng samples the map bilinearly at a latitude/longitude
// pair.
func (m *EquirectMap) ValueAtLatLng(ll s2.LatLng) (uint32, error) {
	x, y, err := m.XYFromLatLng(ll)
	if err != nil {
		return 0, err
	}
	return m.Interpolate(x, y)
}

// ValueAtVector samples the map in the given direction.
func (m *EquirectMap) ValueAtVector(v r3.Vector) (uint32, error) {
	if v == (r3.Vector{}) {
		return 0, fmt.Errorf("pyrostex: zero direction vector: %w", ErrInvalidArgument)
	}
	return m.ValueAtLatLng(LatLngFromVector(v))
}
