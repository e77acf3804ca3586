package gfx

import (
	"image/color"
	"testing"

	"planespotter/hal"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestLineIncludesEndpoints(t *testing.T) {
	fb := hal.NewFramebuffer(16, 16)
	Line(fb, 1, 2, 9, 7, red)

	want := hal.RGBATo565(red)
	if fb.Pixel(1, 2) != want || fb.Pixel(9, 7) != want {
		t.Fatal("line endpoints not drawn")
	}
}

func TestLineClipsOffscreen(t *testing.T) {
	fb := hal.NewFramebuffer(8, 8)
	Line(fb, -20, -20, 20, 20, red)

	want := hal.RGBATo565(red)
	for i := 0; i < 8; i++ {
		if fb.Pixel(i, i) != want {
			t.Fatalf("diagonal pixel %d missing", i)
		}
	}
}

func TestFillRectRejectsOutOfBounds(t *testing.T) {
	fb := hal.NewFramebuffer(8, 8)
	FillRect(fb, 10, 10, 4, 4, red)
	FillRect(fb, -10, 0, 4, 4, red)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if fb.Pixel(x, y) != 0 {
				t.Fatalf("pixel (%d,%d) touched", x, y)
			}
		}
	}
}

func TestFillTriangleCoversInterior(t *testing.T) {
	fb := hal.NewFramebuffer(32, 32)
	FillTriangle(fb, 16, 2, 2, 28, 30, 28, red)

	want := hal.RGBATo565(red)
	if fb.Pixel(16, 20) != want {
		t.Fatal("interior not filled")
	}
	if fb.Pixel(2, 2) != 0 {
		t.Fatal("fill leaked outside the triangle")
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	fb := hal.NewFramebuffer(16, 16)
	FillTriangle(fb, 3, 5, 9, 5, 6, 5, red)

	want := hal.RGBATo565(red)
	for x := 3; x <= 9; x++ {
		if fb.Pixel(x, 5) != want {
			t.Fatalf("pixel (%d,5) missing", x)
		}
	}
}

func TestCircleCardinalPoints(t *testing.T) {
	fb := hal.NewFramebuffer(32, 32)
	Circle(fb, 16, 16, 8, red)

	want := hal.RGBATo565(red)
	for _, p := range [][2]int{{24, 16}, {8, 16}, {16, 24}, {16, 8}} {
		if fb.Pixel(p[0], p[1]) != want {
			t.Fatalf("pixel %v missing", p)
		}
	}
	if fb.Pixel(16, 16) != 0 {
		t.Fatal("outline filled the centre")
	}
}

func TestFillRoundRectKeepsCornersClear(t *testing.T) {
	fb := hal.NewFramebuffer(32, 32)
	FillRoundRect(fb, 4, 4, 20, 12, 4, red)

	want := hal.RGBATo565(red)
	if fb.Pixel(4, 4) != 0 {
		t.Fatal("corner should stay clear")
	}
	if fb.Pixel(14, 10) != want || fb.Pixel(4, 10) != want || fb.Pixel(14, 4) != want {
		t.Fatal("body not filled")
	}
}

func TestClipKeepsDrawingInside(t *testing.T) {
	fb := hal.NewFramebuffer(16, 16)
	c := &Clip{Target: fb, Height: 8}

	Line(c, 0, 0, 15, 15, red)
	FillTriangle(c, 0, 4, 15, 4, 8, 15, red)
	c.SetPixel(3, 12, red)
	if err := c.FillRectangle(0, 6, 16, 6, red); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	want := hal.RGBATo565(red)
	if fb.Pixel(7, 7) != want || fb.Pixel(0, 6) != want {
		t.Fatal("drawing inside the clip missing")
	}
	for y := 8; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if fb.Pixel(x, y) != 0 {
				t.Fatalf("pixel (%d,%d) drawn below the clip", x, y)
			}
		}
	}
	if w, h := c.Size(); w != 16 || h != 8 {
		t.Fatalf("Size = %dx%d; want 16x8", w, h)
	}
}
