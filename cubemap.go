package pyrostex

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// CubeMap is a scalar field whose single grid is logically divided
// into six equal face tiles packed in a 3-column by 2-row layout:
// faces 0..2 fill the top row left to right, faces 3..5 the bottom
// row. Vector and lat/lng queries are routed to the owning face tile;
// the tiles are views into the atlas grid, created once at
// construction.
type CubeMap struct {
	Field
	tileW int
	tileH int
	faces [FaceCount]*Tile
}

// NewCubeMap creates a cube-map atlas of the given size. The width
// must divide evenly by 3 and the height by 2, with faces of at least
// 2x2 samples.
func NewCubeMap(width, height int, opts ...MapOption) (*CubeMap, error) {
	if width%3 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("pyrostex: atlas %dx%d does not divide into a 3x2 face layout: %w", width, height, ErrInvalidArgument)
	}
	tw, th := width/3, height/2
	if tw < 2 || th < 2 {
		return nil, fmt.Errorf("pyrostex: atlas faces %dx%d need at least 2x2 samples: %w", tw, th, ErrInvalidArgument)
	}
	o := defaultMapOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := o.gridFor(width, height)
	if err != nil {
		return nil, err
	}
	c := &CubeMap{
		Field: newField(g, 0, 0, width, height),
		tileW: tw,
		tileH: th,
	}
	c.cellW, c.cellH = tw, th
	for f := Face(0); f < FaceCount; f++ {
		orgX, orgY := c.faceOrigin(f)
		c.faces[f] = newFaceView(g, f, orgX, orgY, tw, th)
	}
	return c, nil
}

// TileWidth returns the width of one face tile.
func (c *CubeMap) TileWidth() int { return c.tileW }

// TileHeight returns the height of one face tile.
func (c *CubeMap) TileHeight() int { return c.tileH }

// FaceTile returns the view of one face of the atlas.
func (c *CubeMap) FaceTile(f Face) (*Tile, error) {
	if f < 0 || f >= FaceCount {
		return nil, fmt.Errorf("pyrostex: face index %d: %w", f, ErrOutOfRange)
	}
	return c.faces[f], nil
}

// faceOrigin returns the atlas pixel offset of a face's tile.
func (c *CubeMap) faceOrigin(f Face) (x, y int) {
	return (int(f) % 3) * c.tileW, (int(f) / 3) * c.tileH
}

// FaceAt classifies an atlas coordinate by tile column and row.
func (c *CubeMap) FaceAt(x, y float64) (Face, error) {
	if x < 0 || y < 0 || x > float64(c.width) || y > float64(c.height) {
		return 0, fmt.Errorf("pyrostex: coordinate (%g,%g) in %dx%d atlas: %w", x, y, c.width, c.height, ErrOutOfRange)
	}
	var col Face
	switch {
	case x < float64(c.tileW):
		col = 0
	case x < float64(2*c.tileW):
		col = 1
	default:
		col = 2
	}
	if y >= float64(c.height)/2 {
		col += 3
	}
	return col, nil
}

// VectorAt returns the direction of an atlas coordinate: the owning
// face is resolved, the coordinate translated by the face's pixel
// offset, and the face tile reconstructs the direction.
func (c *CubeMap) VectorAt(x, y float64) (r3.Vector, error) {
	f, err := c.FaceAt(x, y)
	if err != nil {
		return r3.Vector{}, err
	}
	orgX, orgY := c.faceOrigin(f)
	return c.faces[f].VectorAt(x-float64(orgX), y-float64(orgY))
}

// ValueAtVector samples the atlas in the given direction, delegating
// to the face tile the direction projects onto.
func (c *CubeMap) ValueAtVector(v r3.Vector) (uint32, error) {
	if v == (r3.Vector{}) {
		return 0, fmt.Errorf("pyrostex: zero direction vector: %w", ErrInvalidArgument)
	}
	return c.faces[FaceOf(v)].ValueAtVector(v)
}

// ValueAtLatLng samples the atlas at a latitude/longitude pair.
func (c *CubeMap) ValueAtLatLng(ll s2.LatLng) (uint32, error) {
	return c.ValueAtVector(VectorFromLatLng(ll))
}
