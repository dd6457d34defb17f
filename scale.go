package pyrostex

import (
	"fmt"
	"math"
)

// Scale is a linear encoding between physical values and stored
// samples: value = Origin + Step*sample. Encodings for temperature,
// height or pressure are just Scale values with the right origin and
// step; they layer strictly on top of ValueAt and SetValue and never
// touch grid memory directly.
type Scale struct {
	// Origin is the physical value of sample 0.
	Origin float64
	// Step is the physical value of one sample increment. Must be
	// nonzero.
	Step float64
}

// Encode converts a physical value to the nearest sample. Values below
// Origin fail with ErrOutOfRange; range checking against a grid's
// maximum happens on write.
func (s Scale) Encode(val float64) (uint32, error) {
	if s.Step == 0 {
		return 0, fmt.Errorf("pyrostex: zero scale step: %w", ErrInvalidArgument)
	}
	n := math.Round((val - s.Origin) / s.Step)
	if n < 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("pyrostex: value %g encodes outside sample range: %w", val, ErrOutOfRange)
	}
	return uint32(n), nil
}

// Decode converts a stored sample back to a physical value.
func (s Scale) Decode(sample uint32) float64 {
	return s.Origin + s.Step*float64(sample)
}

// Read returns the decoded physical value at integer coordinates.
func (s Scale) Read(m Map, x, y int) (float64, error) {
	v, err := m.ValueAt(x, y)
	if err != nil {
		return 0, err
	}
	return s.Decode(v), nil
}

// Write encodes a physical value and stores it at integer coordinates.
func (s Scale) Write(m Map, x, y int, val float64) error {
	n, err := s.Encode(val)
	if err != nil {
		return err
	}
	return m.SetValue(x, y, n)
}
