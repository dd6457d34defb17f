package pyrostex

import "fmt"

// Resample rebuilds dst from src: for every destination pixel the
// destination's own geometry recovers the pixel's direction vector and
// the source is sampled in that direction. This is the sole general
// conversion path between representations (atlas to equirectangular
// and back); it runs in O(destination pixels), caches nothing, and
// recomputes from scratch on every call.
//
// The destination must implement VectorAt and the source
// ValueAtVector; ErrUnsupported propagates otherwise. Sampled values
// exceeding the destination's sample range fail with ErrOutOfRange.
func Resample(dst, src Map) error {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			v, err := dst.VectorAt(float64(x), float64(y))
			if err != nil {
				return fmt.Errorf("pyrostex: resample destination pixel (%d,%d): %w", x, y, err)
			}
			val, err := src.ValueAtVector(v)
			if err != nil {
				return fmt.Errorf("pyrostex: resample source at pixel (%d,%d): %w", x, y, err)
			}
			if err := dst.SetValue(x, y, val); err != nil {
				return err
			}
		}
	}
	Logger().Debug("resampled field",
		"dst_width", dst.Width(), "dst_height", dst.Height(),
		"src_width", src.Width(), "src_height", src.Height())
	return nil
}
