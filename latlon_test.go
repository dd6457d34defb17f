package pyrostex

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const tolerance = 1e-12

func vecNear(a, b r3.Vector, tol float64) bool {
	return abs(a.X-b.X) <= tol && abs(a.Y-b.Y) <= tol && abs(a.Z-b.Z) <= tol
}

func TestVectorFromLatLng(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     r3.Vector
	}{
		{"origin", 0, 0, r3.Vector{X: 1}},
		{"north pole", MaxLat, 0, r3.Vector{Z: 1}},
		{"south pole", MinLat, 0, r3.Vector{Z: -1}},
		{"quarter east", 0, math.Pi / 2, r3.Vector{Y: 1}},
		{"antimeridian", 0, math.Pi, r3.Vector{X: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VectorFromLatLng(s2.LatLng{Lat: s1.Angle(tt.lat), Lng: s1.Angle(tt.lon)})
			if !vecNear(got, tt.want, tolerance) {
				t.Errorf("VectorFromLatLng(%g,%g) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestLatLngFromVector(t *testing.T) {
	ll := LatLngFromVector(r3.Vector{Z: 1})
	if abs(ll.Lat.Radians()-MaxLat) > tolerance {
		t.Errorf("lat of (0,0,1) = %g, want %g", ll.Lat.Radians(), MaxLat)
	}

	ll = LatLngFromVector(r3.Vector{X: 1})
	if abs(ll.Lat.Radians()) > tolerance || abs(ll.Lng.Radians()) > tolerance {
		t.Errorf("lat/lng of (1,0,0) = (%g,%g), want (0,0)", ll.Lat.Radians(), ll.Lng.Radians())
	}

	// Length must not matter.
	ll = LatLngFromVector(r3.Vector{X: 0, Y: 5, Z: 0})
	if abs(ll.Lng.Radians()-math.Pi/2) > tolerance {
		t.Errorf("lng of (0,5,0) = %g, want %g", ll.Lng.Radians(), math.Pi/2)
	}
}

func TestLatLngVectorRoundTrip(t *testing.T) {
	for _, lat := range []float64{-1.2, -0.3, 0, 0.7, 1.4} {
		for _, lon := range []float64{-3, -1.5, 0, 0.4, 2.8} {
			in := s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}
			out := LatLngFromVector(VectorFromLatLng(in))
			if abs(out.Lat.Radians()-lat) > 1e-9 || abs(out.Lng.Radians()-lon) > 1e-9 {
				t.Errorf("round trip (%g,%g) = (%g,%g)", lat, lon, out.Lat.Radians(), out.Lng.Radians())
			}
		}
	}
}
