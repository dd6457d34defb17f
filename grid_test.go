package pyrostex

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(10, 5, Depth16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Width() != 10 || g.Height() != 5 {
		t.Errorf("size = %dx%d, want 10x5", g.Width(), g.Height())
	}
	if g.MaxValue() != 65535 {
		t.Errorf("MaxValue = %d, want 65535", g.MaxValue())
	}

	// Zero-initialized
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			v, err := g.Value(x, y)
			if err != nil {
				t.Fatalf("Value(%d,%d): %v", x, y, err)
			}
			if v != 0 {
				t.Errorf("Value(%d,%d) = %d, want 0", x, y, v)
			}
		}
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	for _, tt := range []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 5}, {5, -1}} {
		if _, err := NewGrid(tt.w, tt.h, Depth8); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewGrid(%d,%d) error = %v, want ErrInvalidArgument", tt.w, tt.h, err)
		}
	}
}

func TestDepthMaxValue(t *testing.T) {
	tests := []struct {
		depth Depth
		bytes int
		max   uint32
	}{
		{Depth8, 1, 255},
		{Depth16, 2, 65535},
		{Depth32, 4, 4294967295},
	}
	for _, tt := range tests {
		t.Run(tt.depth.String(), func(t *testing.T) {
			if got := tt.depth.Bytes(); got != tt.bytes {
				t.Errorf("Bytes = %d, want %d", got, tt.bytes)
			}
			if got := tt.depth.MaxValue(); got != tt.max {
				t.Errorf("MaxValue = %d, want %d", got, tt.max)
			}
		})
	}
}

func TestGridRoundTrip(t *testing.T) {
	for _, depth := range []Depth{Depth8, Depth16, Depth32} {
		t.Run(depth.String(), func(t *testing.T) {
			g, err := NewGrid(7, 3, depth)
			if err != nil {
				t.Fatalf("NewGrid: %v", err)
			}
			want := depth.MaxValue() - 1
			if err := g.SetValue(6, 2, want); err != nil {
				t.Fatalf("SetValue: %v", err)
			}
			got, err := g.Value(6, 2)
			if err != nil {
				t.Fatalf("Value: %v", err)
			}
			if got != want {
				t.Errorf("Value = %d, want %d", got, want)
			}
		})
	}
}

func TestGridOutOfRange(t *testing.T) {
	g, err := NewGrid(10, 5, Depth8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	oob := []struct{ x, y int }{
		{-1, 0}, {10, 0}, {0, -1}, {0, 5}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		if _, err := g.Value(c.x, c.y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Value(%d,%d) error = %v, want ErrOutOfRange", c.x, c.y, err)
		}
		if err := g.SetValue(c.x, c.y, 1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetValue(%d,%d) error = %v, want ErrOutOfRange", c.x, c.y, err)
		}
	}
}

func TestGridValueTooLarge(t *testing.T) {
	g, err := NewGrid(4, 4, Depth8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := g.SetValue(0, 0, 256); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetValue(256) error = %v, want ErrOutOfRange", err)
	}
	if err := g.SetValue(0, 0, 255); err != nil {
		t.Errorf("SetValue(255): %v", err)
	}
}
