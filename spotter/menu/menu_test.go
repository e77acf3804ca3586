package menu

import (
	"image/color"
	"testing"

	"planespotter/hal"
	"planespotter/spotter/aircraft"
	"planespotter/spotter/text"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
	"tinygo.org/x/tinyfont"
)

type fixedFont struct{ g fixedGlyph }

type fixedGlyph struct{ r rune }

func (g *fixedGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) { d.SetPixel(x, y-1, c) }

func (g *fixedGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{Rune: g.r, Width: 8, Height: 24, XAdvance: 8, YOffset: -23}
}

func (f *fixedFont) GetYAdvance() uint8 { return FontHeight }

func (f *fixedFont) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func newPresenter() (*Presenter, *hal.Framebuffer) {
	fb := hal.NewFramebuffer(480, 320)
	return New(fb, text.New(fb, &fixedFont{})), fb
}

func TestDrawListDividers(t *testing.T) {
	p, fb := newPresenter()
	p.Draw(MainMenu)

	white := hal.RGB565(0xff, 0xff, 0xff)
	for i := range MainMenu.Rows {
		if fb.Pixel(479, i*RowHeight) != white {
			t.Fatalf("divider %d missing", i)
		}
	}
	if fb.Pixel(479, len(MainMenu.Rows)*RowHeight) != 0 {
		t.Fatal("extra divider after the last row")
	}
	if fb.Pixel(479, RowHeight+1) != 0 {
		t.Fatal("screen not cleared")
	}
}

func TestDrawListLabelPosition(t *testing.T) {
	p, fb := newPresenter()
	p.DrawList("", []string{"A"})

	// Top of row 0 label is (RowHeight-FontHeight)/2 = 8; glyph pixel lands
	// one above the baseline at 8+18.
	if fb.Pixel(20, 8+FontHeight*3/4-1) != hal.RGB565(0xff, 0xff, 0xff) {
		t.Fatal("row label not at (20, 8)")
	}
}

func TestRowAt(t *testing.T) {
	p, _ := newPresenter()
	p.Draw(MainMenu)

	cases := map[int]int{0: 0, 39: 0, 40: 1, 199: 4, 200: -1, -1: -1}
	for y, want := range cases {
		if got := p.RowAt(y); got != want {
			t.Fatalf("RowAt(%d) = %d; want %d", y, got, want)
		}
	}
}

func TestPresetMenuEndsWithBack(t *testing.T) {
	if n := len(PresetMenu.Rows); n != len(Presets)+1 {
		t.Fatalf("rows = %d", n)
	}
	if PresetMenu.Rows[len(PresetMenu.Rows)-1] != "Back" {
		t.Fatal("last preset row is not Back")
	}
	if !Presets[len(Presets)-1].Current {
		t.Fatal("Current location entry missing")
	}
}

func TestCalibrationMap(t *testing.T) {
	c := Calibration{MinX: 100, MinY: 100, MaxX: 900, MaxY: 900}
	p := c.Map(touch.Point{X: 500, Y: 100, Z: 1}, 480, 320)
	if p.X != 240 || p.Y != 0 {
		t.Fatalf("Map = %+v; want (240,0)", p)
	}
	if !c.Valid() {
		t.Fatal("calibration reported invalid")
	}
	if (Calibration{MinX: 5, MaxX: 5, MinY: 0, MaxY: 1}).Valid() {
		t.Fatal("degenerate calibration reported valid")
	}
}

type fixedPointer touch.Point

func (p fixedPointer) ReadTouchPoint() touch.Point { return touch.Point(p) }

func TestTouchPoint(t *testing.T) {
	c := Calibration{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
	if _, ok := c.TouchPoint(fixedPointer{X: 500, Y: 500}, 480, 320); ok {
		t.Fatal("zero pressure reported as a touch")
	}
	p, ok := c.TouchPoint(fixedPointer{X: 500, Y: 500, Z: 300}, 480, 320)
	if !ok || p.X != 240 || p.Y != 160 {
		t.Fatalf("TouchPoint = %+v, %v", p, ok)
	}
}

func TestZoomPanAt(t *testing.T) {
	p, _ := newPresenter()
	cases := []struct {
		x, y int
		want ZoomPanAction
	}{
		{240, 10, PanUp},
		{240, 240, PanDown},
		{10, 125, PanLeft},
		{470, 125, PanRight},
		{240, 125, ZoomReset},
		{470, 10, ZoomIn},
		{470, 240, ZoomOut},
		{10, 10, ZoomPanNone},
		{240, 260, ZoomPanNone},
	}
	for _, c := range cases {
		if got := p.ZoomPanAt(aircraft.CoordinatesPixel{X: c.x, Y: c.y}, 250); got != c.want {
			t.Fatalf("ZoomPanAt(%d,%d) = %v; want %v", c.x, c.y, got, c.want)
		}
	}
}
