// Package pyrostex stores scalar fields (elevation, temperature,
// pressure) defined over the surface of a sphere and converts between
// four coordinate spaces: unit-sphere direction vectors, latitude and
// longitude, a global equirectangular grid, and a six-face cube-map
// atlas grid.
//
// # Quick Start
//
//	import "github.com/fractalbach/pyrostex"
//
//	// Create a cube-map atlas: 6 faces of 100x100 pixels in a 3x2 layout
//	cube, _ := pyrostex.NewCubeMap(300, 200, pyrostex.WithDepth(pyrostex.Depth16))
//
//	// Read a value by direction vector
//	v, _ := cube.ValueAtVector(r3.Vector{X: 1, Y: 0.2, Z: -0.1})
//
//	// Rebuild a global equirectangular map from the cube map
//	eq, _ := pyrostex.NewEquirectMap(720, 360, pyrostex.WithDepth(pyrostex.Depth16))
//	_ = pyrostex.Resample(eq, cube)
//
// # Representations
//
// Every representation satisfies the Map interface: EquirectMap projects
// latitude/longitude onto the grid analytically, CubeMap packs six
// gnomonic face projections into one 3x2 atlas, and Tile is a single
// face projection (either standalone or a view into an atlas). Resample
// converts between any two representations through the shared direction
// vector space.
//
// # Coordinate System
//
//   - Grid origin (0,0) at the first row and column, x increases along
//     a row, y increases row by row.
//   - Latitude in [-Pi/2, Pi/2], longitude in [-Pi, Pi], radians.
//   - Direction vectors follow the s2 convention: latitude 0, longitude
//     0 is (1,0,0); the north pole is (0,0,1).
//
// # Seams
//
// Bilinear sampling resolves neighbor pixels by simple offset within a
// representation's own addressing and never stitches across cube faces.
// At face boundaries the interpolated result is a bounded approximation;
// sampling through ValueAtVector is continuous across faces by
// construction and should be preferred near seams.
//
// # Concurrency
//
// Maps are plain data with no internal locking. Concurrent readers are
// safe; any mutation requires external synchronization.
package pyrostex
