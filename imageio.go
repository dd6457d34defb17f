package pyrostex

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Image returns a copy of the grid as a grayscale image: Depth8 grids
// become *image.Gray, Depth16 grids *image.Gray16. Depth32 exceeds
// what a grayscale image can hold and fails with ErrUnsupported.
func (g *Grid) Image() (image.Image, error) {
	switch g.depth {
	case Depth8:
		img := image.NewGray(image.Rect(0, 0, g.width, g.height))
		copy(img.Pix, g.data)
		return img, nil
	case Depth16:
		img := image.NewGray16(image.Rect(0, 0, g.width, g.height))
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				img.SetGray16(x, y, color.Gray16{Y: uint16(g.at(y*g.width + x))})
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("pyrostex: %s grid has no image form: %w", g.depth, ErrUnsupported)
}

// SavePNG writes the grid to a grayscale PNG file.
func (g *Grid) SavePNG(path string) error {
	img, err := g.Image()
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}

// LoadPNG reads a grid from a PNG file. Grayscale images map directly
// onto Depth8 or Depth16 grids; any other color model is converted to
// 16-bit grayscale.
func LoadPNG(path string) (*Grid, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	depth := Depth16
	if _, ok := img.(*image.Gray); ok {
		depth = Depth8
	}
	return GridFromImage(img, b.Dx(), b.Dy(), depth)
}

// GridFromImage converts an image to a grid of the given size and
// depth, rescaling when the sizes differ. Only Depth8 and Depth16
// targets are supported.
func GridFromImage(img image.Image, width, height int, depth Depth) (*Grid, error) {
	g, err := NewGrid(width, height, depth)
	if err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, width, height)
	switch depth {
	case Depth8:
		dst := image.NewGray(rect)
		draw.ApproxBiLinear.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)
		copy(g.data, dst.Pix)
	case Depth16:
		dst := image.NewGray16(rect)
		draw.ApproxBiLinear.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				g.set(y*width+x, uint32(dst.Gray16At(x, y).Y))
			}
		}
	default:
		return nil, fmt.Errorf("pyrostex: image import into a %s grid: %w", depth, ErrUnsupported)
	}
	Logger().Debug("imported image grid",
		"width", width, "height", height, "depth", depth.String(),
		"src_width", img.Bounds().Dx(), "src_height", img.Bounds().Dy())
	return g, nil
}
