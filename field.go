package pyrostex

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Map is the contract every scalar-field representation satisfies.
// EquirectMap, CubeMap and Tile implement the full contract; a bare
// Field answers the vector-based lookups with ErrUnsupported.
type Map interface {
	// Width returns the number of samples in one row.
	Width() int
	// Height returns the number of rows.
	Height() int
	// ValueAt returns the exact sample at integer coordinates.
	ValueAt(x, y int) (uint32, error)
	// SetValue stores one sample at integer coordinates.
	SetValue(x, y int, v uint32) error
	// Interpolate samples the field bilinearly at real coordinates.
	Interpolate(x, y float64) (uint32, error)
	// VectorAt returns the direction vector for a grid coordinate.
	VectorAt(x, y float64) (r3.Vector, error)
	// ValueAtVector samples the field in the given direction.
	ValueAtVector(v r3.Vector) (uint32, error)
	// ValueAtLatLng samples the field at a latitude/longitude pair.
	ValueAtLatLng(ll s2.LatLng) (uint32, error)
}

var (
	_ Map = (*Field)(nil)
	_ Map = (*EquirectMap)(nil)
	_ Map = (*CubeMap)(nil)
	_ Map = (*Tile)(nil)
)

// pixel addresses one sample within a field view.
type pixel struct {
	x, y int
}

// Field is a rectangular view into a grid plus the generic sampling
// machinery shared by all representations. A standalone field covers
// its whole grid; an atlas face is a view with a pixel origin offset
// into the shared atlas grid. cellW/cellH describe the seam partition
// of the view: neighbor lookups treat cell boundaries as edges (zero
// means the view is a single cell).
type Field struct {
	grid         *Grid
	orgX, orgY   int
	width        int
	height       int
	cellW, cellH int
}

// newField creates a view of size width x height anchored at
// (orgX, orgY) within g.
func newField(g *Grid, orgX, orgY, width, height int) Field {
	return Field{grid: g, orgX: orgX, orgY: orgY, width: width, height: height}
}

// Width returns the number of samples in one row of the view.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows of the view.
func (f *Field) Height() int { return f.height }

// Grid exposes the backing grid. For an atlas face view this is the
// shared atlas grid, which must outlive the view.
func (f *Field) Grid() *Grid { return f.grid }

// MaxValue returns the largest value a sample can hold.
func (f *Field) MaxValue() uint32 { return f.grid.MaxValue() }

// ValueAt returns the sample at (x, y). It fails with ErrOutOfRange
// when the coordinate lies outside the view.
func (f *Field) ValueAt(x, y int) (uint32, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, fmt.Errorf("pyrostex: read (%d,%d) in %dx%d field: %w", x, y, f.width, f.height, ErrOutOfRange)
	}
	return f.grid.Value(f.orgX+x, f.orgY+y)
}

// SetValue stores a sample at (x, y). It fails with ErrOutOfRange when
// the coordinate lies outside the view or the value exceeds the grid's
// MaxValue.
func (f *Field) SetValue(x, y int, v uint32) error {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return fmt.Errorf("pyrostex: write (%d,%d) in %dx%d field: %w", x, y, f.width, f.height, ErrOutOfRange)
	}
	return f.grid.SetValue(f.orgX+x, f.orgY+y, v)
}

// sample reads a pixel for interpolation. Unlike ValueAt it is checked
// against the backing grid, not the view: the right and row-down
// neighbors of a pixel on a face-view edge deliberately spill into the
// adjacent region of the shared atlas grid (see upperRight).
func (f *Field) sample(x, y int) (float64, error) {
	v, err := f.grid.Value(f.orgX+x, f.orgY+y)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

// upperRight resolves the diagonal neighbor of the base pixel (x, y).
// The neighbor is absent when the +1/+1 offset leaves the view or
// crosses a seam-cell boundary (the last column or row of an atlas
// face, or a grid corner). Callers substitute the documented fallback
// instead; cross-face stitching is not implemented.
func (f *Field) upperRight(x, y int) (pixel, bool) {
	nx, ny := x+1, y+1
	if nx >= f.width || ny >= f.height {
		return pixel{}, false
	}
	if f.cellW > 0 && (nx%f.cellW == 0 || ny%f.cellH == 0) {
		return pixel{}, false
	}
	return pixel{nx, ny}, true
}

// Interpolate samples the field bilinearly at real coordinates.
// Coordinates must satisfy 0 <= x <= Width and 0 <= y <= Height; the
// inclusive upper bound samples the last column or row exactly. When
// the diagonal neighbor of the 2x2 block is absent (see upperRight) the
// average of the right and row-down samples substitutes for it. The
// result is truncated to an integer.
func (f *Field) Interpolate(x, y float64) (uint32, error) {
	if x < 0 || y < 0 || x > float64(f.width) || y > float64(f.height) {
		return 0, fmt.Errorf("pyrostex: interpolate (%g,%g) in %dx%d field: %w", x, y, f.width, f.height, ErrOutOfRange)
	}
	ai := int(math.Floor(x))
	bi := int(math.Floor(y))
	am := x - float64(ai)
	bm := y - float64(bi)
	if ai == f.width {
		ai--
		am = 0
	}
	if bi == f.height {
		bi--
		bm = 0
	}

	base, err := f.sample(ai, bi)
	if err != nil {
		return 0, err
	}
	switch {
	case am == 0 && bm == 0:
		return uint32(base), nil
	case bm == 0:
		r, err := f.sample(ai+1, bi)
		if err != nil {
			return 0, err
		}
		return uint32(base + (r-base)*am), nil
	case am == 0:
		u, err := f.sample(ai, bi+1)
		if err != nil {
			return 0, err
		}
		return uint32(base + (u-base)*bm), nil
	}

	r, err := f.sample(ai+1, bi)
	if err != nil {
		return 0, err
	}
	u, err := f.sample(ai, bi+1)
	if err != nil {
		return 0, err
	}
	var ur float64
	if p, ok := f.upperRight(ai, bi); ok {
		if ur, err = f.sample(p.x, p.y); err != nil {
			return 0, err
		}
	} else {
		ur = (r + u) / 2
	}

	// Rows first (bm weight), then columns (am weight).
	left := base + (u-base)*bm
	right := r + (ur-r)*bm
	return uint32(left + (right-left)*am), nil
}

// InterpolateRelative samples the field at relative coordinates in
// [0,1], mapped affinely onto [0, Width-1] x [0, Height-1].
func (f *Field) InterpolateRelative(rx, ry float64) (uint32, error) {
	if rx < 0 || rx > 1 || ry < 0 || ry > 1 {
		return 0, fmt.Errorf("pyrostex: relative coordinate (%g,%g): %w", rx, ry, ErrOutOfRange)
	}
	return f.Interpolate(rx*float64(f.width-1), ry*float64(f.height-1))
}

// Gradient estimates the local gradient at real coordinates from the
// same 2x2 block bilinear sampling uses. When the diagonal neighbor is
// absent the estimate falls back to one-sided differences from the
// three available samples.
func (f *Field) Gradient(x, y float64) (mgl64.Vec2, error) {
	if x < 0 || y < 0 || x > float64(f.width) || y > float64(f.height) {
		return mgl64.Vec2{}, fmt.Errorf("pyrostex: gradient (%g,%g) in %dx%d field: %w", x, y, f.width, f.height, ErrOutOfRange)
	}
	ai := int(math.Floor(x))
	bi := int(math.Floor(y))
	if ai == f.width {
		ai--
	}
	if bi == f.height {
		bi--
	}

	base, err := f.sample(ai, bi)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	r, err := f.sample(ai+1, bi)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	u, err := f.sample(ai, bi+1)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	p, ok := f.upperRight(ai, bi)
	if !ok {
		return mgl64.Vec2{r - base, u - base}, nil
	}
	ur, err := f.sample(p.x, p.y)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return mgl64.Vec2{
		((base + ur) - (u + r)) / 2,
		((base + u) - (r + ur)) / 2,
	}, nil
}

// VectorAt is a representation hook; a bare Field has no spherical
// geometry and fails with ErrUnsupported.
func (f *Field) VectorAt(x, y float64) (r3.Vector, error) {
	return r3.Vector{}, fmt.Errorf("pyrostex: vector lookup on a bare field: %w", ErrUnsupported)
}

// ValueAtVector is a representation hook; a bare Field has no spherical
// geometry and fails with ErrUnsupported.
func (f *Field) ValueAtVector(v r3.Vector) (uint32, error) {
	return 0, fmt.Errorf("pyrostex: vector sampling on a bare field: %w", ErrUnsupported)
}

// ValueAtLatLng is a representation hook; a bare Field has no spherical
// geometry and fails with ErrUnsupported.
func (f *Field) ValueAtLatLng(ll s2.LatLng) (uint32, error) {
	return 0, fmt.Errorf("pyrostex: lat/lng sampling on a bare field: %w", ErrUnsupported)
}
