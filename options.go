package pyrostex

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MapOption configures a map representation during creation.
// Use functional options to customize construction.
//
// Example:
//
//	// Default 8-bit samples
//	eq, err := pyrostex.NewEquirectMap(720, 360)
//
//	// 16-bit samples
//	eq, err := pyrostex.NewEquirectMap(720, 360, pyrostex.WithDepth(pyrostex.Depth16))
type MapOption func(*mapOptions)

// mapOptions holds optional configuration for map creation.
type mapOptions struct {
	depth     Depth
	grid      *Grid
	p1, p2    mgl64.Vec2
	hasBounds bool
}

// defaultMapOptions returns the default map options.
func defaultMapOptions() mapOptions {
	return mapOptions{depth: Depth8}
}

// WithDepth sets the sample depth of the grid allocated for the map.
// Ignored when WithGrid supplies a buffer.
func WithDepth(d Depth) MapOption {
	return func(o *mapOptions) {
		o.depth = d
	}
}

// WithGrid supplies an existing grid buffer instead of allocating one.
// The grid dimensions must match the map dimensions; constructors fail
// with ErrInvalidArgument otherwise. The map takes ownership of the
// buffer for writes.
func WithGrid(g *Grid) MapOption {
	return func(o *mapOptions) {
		o.grid = g
	}
}

// WithBounds narrows the relative-coordinate domain of a tile to the
// rectangle spanned by the corners p1 and p2. The default domain is
// (-1,-1) to (1,1), covering a full cube face. Only NewTile honors
// this option.
func WithBounds(p1, p2 mgl64.Vec2) MapOption {
	return func(o *mapOptions) {
		o.p1 = p1
		o.p2 = p2
		o.hasBounds = true
	}
}

// gridFor resolves the grid for a map of the given size: the supplied
// buffer when present (validated against the requested dimensions), a
// fresh allocation otherwise.
func (o *mapOptions) gridFor(width, height int) (*Grid, error) {
	if o.grid != nil {
		if o.grid.Width() != width || o.grid.Height() != height {
			return nil, errGridSize(o.grid, width, height)
		}
		return o.grid, nil
	}
	return NewGrid(width, height, o.depth)
}

func errGridSize(g *Grid, width, height int) error {
	return fmt.Errorf("pyrostex: supplied grid is %dx%d, map needs %dx%d: %w",
		g.Width(), g.Height(), width, height, ErrInvalidArgument)
}
