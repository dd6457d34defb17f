package pyrostex

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// smoothPole is the anchor of the sampling lattice before rotation.
var smoothPole = r3.Vector{X: 0, Y: 0, Z: 1}

// Smoothed approximates a local average of the field around the point
// at grid coordinates (x, y). A polar lattice of samples x samples
// directions (a longitude ring crossed with a latitude band scaled by
// radius) is rotated onto the direction at (x, y); the sampled values
// are summed and divided by samples squared.
//
// samples must be at least 1, else Smoothed fails with
// ErrInvalidArgument; samples == 1 degenerates to a single directional
// sample at the lattice anchor rotated onto the query point. A zero or
// negative accumulated sum cannot occur for a valid field and is
// reported as ErrInconsistent.
func Smoothed(m Map, x, y, radius float64, samples int) (float64, error) {
	if samples < 1 {
		return 0, fmt.Errorf("pyrostex: smoothing with %d samples: %w", samples, ErrInvalidArgument)
	}
	dir, err := m.VectorAt(x, y)
	if err != nil {
		return 0, err
	}
	if dir == (r3.Vector{}) {
		return 0, fmt.Errorf("pyrostex: zero direction at (%g,%g): %w", x, y, ErrInvalidArgument)
	}

	axis := smoothPole.Cross(dir)
	if axis.Norm() == 0 {
		// Query direction on the polar axis: any equatorial axis works.
		axis = r3.Vector{X: 1, Y: 0, Z: 0}
	}
	angle := smoothPole.Angle(dir)
	axisPt := s2.Point{Vector: axis.Normalize()}

	var sum float64
	n := float64(samples)
	for i := 0; i < samples; i++ {
		lat := s1.Angle(MaxLat - radius*float64(i)/n)
		for j := 0; j < samples; j++ {
			lon := s1.Angle(MinLon + 2*math.Pi*float64(j)/n)
			p := s2.Point{Vector: VectorFromLatLng(s2.LatLng{Lat: lat, Lng: lon})}
			rotated := s2.Rotate(p, axisPt, angle)
			v, err := m.ValueAtVector(rotated.Vector)
			if err != nil {
				return 0, err
			}
			sum += float64(v)
		}
	}
	if sum <= 0 {
		return 0, fmt.Errorf("pyrostex: smoothing sum %g over %d samples: %w", sum, samples*samples, ErrInconsistent)
	}
	return sum / (n * n), nil
}
