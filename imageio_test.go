package pyrostex

import (
	"errors"
	"image"
	"path/filepath"
	"testing"
)

func TestGridPNGRoundTrip(t *testing.T) {
	for _, depth := range []Depth{Depth8, Depth16} {
		t.Run(depth.String(), func(t *testing.T) {
			g := makeGrid(t, 6, 4, depth, func(x, y int) uint32 {
				return uint32(x*37+y*11) % (depth.MaxValue() + 1)
			})
			path := filepath.Join(t.TempDir(), "grid.png")
			if err := g.SavePNG(path); err != nil {
				t.Fatalf("SavePNG: %v", err)
			}

			loaded, err := LoadPNG(path)
			if err != nil {
				t.Fatalf("LoadPNG: %v", err)
			}
			if loaded.Width() != 6 || loaded.Height() != 4 {
				t.Fatalf("loaded size = %dx%d, want 6x4", loaded.Width(), loaded.Height())
			}
			if loaded.Depth() != depth {
				t.Fatalf("loaded depth = %v, want %v", loaded.Depth(), depth)
			}
			for y := 0; y < 4; y++ {
				for x := 0; x < 6; x++ {
					want, _ := g.Value(x, y)
					got, _ := loaded.Value(x, y)
					if got != want {
						t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestGridImageUnsupportedDepth(t *testing.T) {
	g, err := NewGrid(4, 4, Depth32)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if _, err := g.Image(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Image on depth32 error = %v, want ErrUnsupported", err)
	}
	if err := g.SavePNG(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SavePNG on depth32 error = %v, want ErrUnsupported", err)
	}
}

func TestGridFromImageRescale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Pix[y*8+x] = 100
		}
	}

	g, err := GridFromImage(src, 4, 4, Depth8)
	if err != nil {
		t.Fatalf("GridFromImage: %v", err)
	}
	if g.Width() != 4 || g.Height() != 4 {
		t.Fatalf("size = %dx%d, want 4x4", g.Width(), g.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v, _ := g.Value(x, y)
			if v != 100 {
				t.Errorf("pixel (%d,%d) = %d, want 100", x, y, v)
			}
		}
	}

	if _, err := GridFromImage(src, 4, 4, Depth32); !errors.Is(err, ErrUnsupported) {
		t.Errorf("GridFromImage depth32 error = %v, want ErrUnsupported", err)
	}
}

func TestGridFromImageGray16(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i] = 0x12
			src.Pix[i+1] = 0x34
		}
	}
	g, err := GridFromImage(src, 3, 3, Depth16)
	if err != nil {
		t.Fatalf("GridFromImage: %v", err)
	}
	v, err := g.Value(1, 1)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("Value(1,1) = %#x, want 0x1234", v)
	}
}
