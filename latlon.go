package pyrostex

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Latitude and longitude bounds, in radians.
const (
	MaxLat = math.Pi / 2
	MinLat = -math.Pi / 2
	MaxLon = math.Pi
	MinLon = -math.Pi
)

// VectorFromLatLng returns the unit direction vector for a latitude and
// longitude pair. Latitude 0, longitude 0 maps to (1,0,0); latitude
// Pi/2 maps to (0,0,1).
func VectorFromLatLng(ll s2.LatLng) r3.Vector {
	return s2.PointFromLatLng(ll).Vector
}

// LatLngFromVector returns the latitude and longitude of a direction
// vector. The vector need not be normalized. The longitude of a vector
// on the polar axis is indeterminate and reported as 0.
func LatLngFromVector(v r3.Vector) s2.LatLng {
	return s2.LatLngFromPoint(s2.Point{Vector: v})
}
