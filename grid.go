package pyrostex

import (
	"fmt"
	"math"
)

// Depth selects the fixed width of a grid sample.
type Depth int

const (
	// Depth8 stores one byte per sample (values 0..255).
	Depth8 Depth = iota
	// Depth16 stores two bytes per sample (values 0..65535).
	Depth16
	// Depth32 stores four bytes per sample.
	Depth32
)

// Bytes returns the number of bytes one sample occupies.
func (d Depth) Bytes() int {
	switch d {
	case Depth16:
		return 2
	case Depth32:
		return 4
	default:
		return 1
	}
}

// MaxValue returns the largest value a sample of this depth can hold.
func (d Depth) MaxValue() uint32 {
	switch d {
	case Depth16:
		return math.MaxUint16
	case Depth32:
		return math.MaxUint32
	default:
		return math.MaxUint8
	}
}

// String returns a short name such as "depth16".
func (d Depth) String() string {
	switch d {
	case Depth16:
		return "depth16"
	case Depth32:
		return "depth32"
	default:
		return "depth8"
	}
}

// Grid is a dense 2D buffer of fixed-width integer samples stored in
// row-major order. Every stored sample satisfies 0 <= value <= MaxValue.
type Grid struct {
	width  int
	height int
	depth  Depth
	data   []byte
}

// NewGrid allocates a zero-initialized grid with the given dimensions
// and sample depth.
func NewGrid(width, height int, depth Depth) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pyrostex: grid dimensions %dx%d: %w", width, height, ErrInvalidArgument)
	}
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]byte, width*height*depth.Bytes()),
	}, nil
}

// Width returns the number of samples in one row.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Depth returns the sample depth.
func (g *Grid) Depth() Depth { return g.depth }

// MaxValue returns the largest value a sample can hold.
func (g *Grid) MaxValue() uint32 { return g.depth.MaxValue() }

// Value returns the sample at (x, y). It fails with ErrOutOfRange when
// the coordinate lies outside the grid.
func (g *Grid) Value(x, y int) (uint32, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, fmt.Errorf("pyrostex: grid read (%d,%d) in %dx%d: %w", x, y, g.width, g.height, ErrOutOfRange)
	}
	return g.at(y*g.width + x), nil
}

// SetValue stores a sample at (x, y). It fails with ErrOutOfRange when
// the coordinate lies outside the grid or the value exceeds MaxValue.
func (g *Grid) SetValue(x, y int, v uint32) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return fmt.Errorf("pyrostex: grid write (%d,%d) in %dx%d: %w", x, y, g.width, g.height, ErrOutOfRange)
	}
	if v > g.MaxValue() {
		return fmt.Errorf("pyrostex: value %d exceeds %s maximum %d: %w", v, g.depth, g.MaxValue(), ErrOutOfRange)
	}
	g.set(y*g.width+x, v)
	return nil
}

// at reads the sample at linear index i. The index must be valid.
func (g *Grid) at(i int) uint32 {
	switch g.depth {
	case Depth16:
		i *= 2
		return uint32(g.data[i]) | uint32(g.data[i+1])<<8
	case Depth32:
		i *= 4
		return uint32(g.data[i]) | uint32(g.data[i+1])<<8 |
			uint32(g.data[i+2])<<16 | uint32(g.data[i+3])<<24
	default:
		return uint32(g.data[i])
	}
}

// set writes the sample at linear index i. The index and value must be
// valid.
func (g *Grid) set(i int, v uint32) {
	switch g.depth {
	case Depth16:
		i *= 2
		g.data[i] = byte(v)
		g.data[i+1] = byte(v >> 8)
	case Depth32:
		i *= 4
		g.data[i] = byte(v)
		g.data[i+1] = byte(v >> 8)
		g.data[i+2] = byte(v >> 16)
		g.data[i+3] = byte(v >> 24)
	default:
		g.data[i] = byte(v)
	}
}
