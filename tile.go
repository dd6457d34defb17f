package pyrostex

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Face identifies one of the six cube faces.
type Face int

// The six faces, named by the axis pointing out of the face center.
const (
	FacePosX Face = iota // +x, atlas top row left
	FaceNegY             // -y, atlas top row middle
	FaceNegX             // -x, atlas top row right
	FacePosY             // +y, atlas bottom row left
	FacePosZ             // +z, atlas bottom row middle
	FaceNegZ             // -z, atlas bottom row right

	// FaceCount is the number of cube faces.
	FaceCount = 6
)

// faceBasis fixes the bijection between a face's relative coordinates
// (a, b) in [-1,1]^2 and a direction: dir = normal + u*a + v*b. The
// inverse divides the u and v components by the normal component:
// a = dir.Dot(u) / dir.Dot(normal), likewise for b.
type faceBasis struct {
	normal r3.Vector
	u      r3.Vector
	v      r3.Vector
}

// faceBases holds the per-face axis/sign assignments:
// face 0 (1,a,b); 1 (a,-1,b); 2 (-1,-a,b); 3 (-a,1,b); 4 (a,b,1);
// 5 (-a,b,-1).
var faceBases = [FaceCount]faceBasis{
	FacePosX: {r3.Vector{X: 1}, r3.Vector{Y: 1}, r3.Vector{Z: 1}},
	FaceNegY: {r3.Vector{Y: -1}, r3.Vector{X: 1}, r3.Vector{Z: 1}},
	FaceNegX: {r3.Vector{X: -1}, r3.Vector{Y: -1}, r3.Vector{Z: 1}},
	FacePosY: {r3.Vector{Y: 1}, r3.Vector{X: -1}, r3.Vector{Z: 1}},
	FacePosZ: {r3.Vector{Z: 1}, r3.Vector{X: 1}, r3.Vector{Y: 1}},
	FaceNegZ: {r3.Vector{Z: -1}, r3.Vector{X: -1}, r3.Vector{Y: 1}},
}

// FaceOf classifies a direction by dominant axis: the x axis is tested
// first, then y, then z, with ties going to the earlier axis. This
// makes the classifier total and deterministic, including at the exact
// edges and corners shared by multiple faces.
func FaceOf(v r3.Vector) Face {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		if v.X > 0 {
			return FacePosX
		}
		return FaceNegX
	case ay >= az:
		if v.Y > 0 {
			return FacePosY
		}
		return FaceNegY
	default:
		if v.Z > 0 {
			return FacePosZ
		}
		return FaceNegZ
	}
}

// String returns a short name such as "+x".
func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+x"
	case FaceNegY:
		return "-y"
	case FaceNegX:
		return "-x"
	case FacePosY:
		return "+y"
	case FacePosZ:
		return "+z"
	case FaceNegZ:
		return "-z"
	}
	return fmt.Sprintf("face(%d)", int(f))
}

// Tile is one planar gnomonic projection of a cube face. A standalone
// tile owns its grid; a tile obtained from a CubeMap is a read/write
// view into the shared atlas grid and must not outlive the atlas. The
// relative-coordinate domain spans the corners p1 to p2, (-1,-1) to
// (1,1) for a full face.
type Tile struct {
	Field
	face Face
	p1   mgl64.Vec2
	p2   mgl64.Vec2
}

// fullFaceP1 and fullFaceP2 are the default relative corner bounds.
var (
	fullFaceP1 = mgl64.Vec2{-1, -1}
	fullFaceP2 = mgl64.Vec2{1, 1}
)

// NewTile creates a standalone tile for the given face with its own
// grid. WithBounds narrows the relative-coordinate domain for partial
// face coverage.
func NewTile(face Face, width, height int, opts ...MapOption) (*Tile, error) {
	if face < 0 || face >= FaceCount {
		return nil, fmt.Errorf("pyrostex: face index %d: %w", face, ErrOutOfRange)
	}
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("pyrostex: tile %dx%d needs at least 2x2 samples: %w", width, height, ErrInvalidArgument)
	}
	o := defaultMapOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := o.gridFor(width, height)
	if err != nil {
		return nil, err
	}
	t := &Tile{
		Field: newField(g, 0, 0, width, height),
		face:  face,
		p1:    fullFaceP1,
		p2:    fullFaceP2,
	}
	if o.hasBounds {
		t.p1, t.p2 = o.p1, o.p2
	}
	return t, nil
}

// newFaceView creates a full-face tile view into an atlas grid.
func newFaceView(g *Grid, face Face, orgX, orgY, width, height int) *Tile {
	return &Tile{
		Field: newField(g, orgX, orgY, width, height),
		face:  face,
		p1:    fullFaceP1,
		p2:    fullFaceP2,
	}
}

// Face returns the cube face this tile projects.
func (t *Tile) Face() Face { return t.face }

// Bounds returns the relative-coordinate corners of the tile's domain.
func (t *Tile) Bounds() (p1, p2 mgl64.Vec2) { return t.p1, t.p2 }

// VectorAt returns the direction of a tile coordinate: the pixel is
// rescaled into the relative domain [p1, p2] per axis, then projected
// through the face's axis table. The result is not normalized.
func (t *Tile) VectorAt(x, y float64) (r3.Vector, error) {
	w, h := float64(t.width-1), float64(t.height-1)
	if x < 0 || x > w || y < 0 || y > h {
		return r3.Vector{}, fmt.Errorf("pyrostex: coordinate (%g,%g) in %dx%d tile: %w", x, y, t.width, t.height, ErrOutOfRange)
	}
	a := t.p1.X() + x/w*(t.p2.X()-t.p1.X())
	b := t.p1.Y() + y/h*(t.p2.Y()-t.p1.Y())
	basis := faceBases[t.face]
	return basis.normal.Add(basis.u.Mul(a)).Add(basis.v.Mul(b)), nil
}

// relativeAt inverts the gnomonic projection: the direction's u and v
// components are divided by its normal component and the result is
// rescaled from [p1, p2] into [0,1]^2 pixel-relative coordinates. A
// direction with a zero normal component cannot be correctly routed to
// this face and fails with ErrInvalidArgument.
func (t *Tile) relativeAt(v r3.Vector) (mgl64.Vec2, error) {
	basis := faceBases[t.face]
	k := v.Dot(basis.normal)
	if k == 0 {
		return mgl64.Vec2{}, fmt.Errorf("pyrostex: direction %v has no %s component: %w", v, t.face, ErrInvalidArgument)
	}
	a := v.Dot(basis.u) / k
	b := v.Dot(basis.v) / k
	return mgl64.Vec2{
		(a - t.p1.X()) / (t.p2.X() - t.p1.X()),
		(b - t.p1.Y()) / (t.p2.Y() - t.p1.Y()),
	}, nil
}

// ValueAtVector samples the tile in the given direction.
func (t *Tile) ValueAtVector(v r3.Vector) (uint32, error) {
	rel, err := t.relativeAt(v)
	if err != nil {
		return 0, err
	}
	return t.InterpolateRelative(rel.X(), rel.Y())
}

// ValueAtLatLng samples the tile at a latitude/longitude pair.
func (t *Tile) ValueAtLatLng(ll s2.LatLng) (uint32, error) {
	return t.ValueAtVector(VectorFromLatLng(ll))
}

// SubTile extracts a tile covering a narrower relative-coordinate
// range of the same face.
//
// Not implemented: a sub-tile's bilinear sampling would need neighbor
// stitching across the parent's pixels, which the seam model does not
// provide. SubTile fails with ErrUnsupported.
func (t *Tile) SubTile(p1, p2 mgl64.Vec2) (*Tile, error) {
	return nil, fmt.Errorf("pyrostex: sub-tile extraction: %w", ErrUnsupported)
}

// abs returns the absolute value of x.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
