package app

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"math"
	"strings"
	"testing"

	"planespotter/hal"
	"planespotter/spotter/aircraft"
	"planespotter/spotter/menu"

	"tinygo.org/x/drivers/touch"
)

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }
func (l *lines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

type pen struct{ p touch.Point }

func (p *pen) ReadTouchPoint() touch.Point { return p.p }

type noFiles struct{}

func (noFiles) Open(name string) (hal.File, error) {
	return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
}

type testHAL struct {
	fb  *hal.Framebuffer
	pen *pen
	log *lines
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Surface() hal.Surface { return h.fb }
func (h *testHAL) Touch() touch.Pointer { return h.pen }
func (h *testHAL) Storage() hal.Storage { return noFiles{} }

func newTestHAL() *testHAL {
	return &testHAL{fb: hal.NewFramebuffer(480, 320), pen: &pen{}, log: &lines{}}
}

// newTestSpotter uses a 1:1 calibration so raw touch samples are pixels.
func newTestSpotter() (*Spotter, *testHAL) {
	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.Touch = menu.Calibration{MinX: 0, MinY: 0, MaxX: 480, MaxY: 320}
	return NewSpotter(h, cfg), h
}

// tap presses at (x, y) for one frame and releases on the next.
func tap(t *testing.T, sp *Spotter, h *testHAL, x, y int) {
	t.Helper()
	h.pen.p = touch.Point{X: x, Y: y, Z: 100}
	if err := sp.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	h.pen.p = touch.Point{}
	if err := sp.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func TestTrafficCapsFleet(t *testing.T) {
	c := aircraft.Coordinates{Lat: 52, Lon: 5}
	if n := NewTraffic(c, 100, 1).Len(); n != len(fleet) {
		t.Fatalf("Len = %d; want %d", n, len(fleet))
	}
	empty := NewTraffic(c, -1, 1)
	if empty.Len() != 0 || empty.Nearest() != -1 {
		t.Fatalf("empty traffic: len=%d nearest=%d", empty.Len(), empty.Nearest())
	}
}

func TestTrafficSamplesHistory(t *testing.T) {
	tr := NewTraffic(aircraft.Coordinates{Lat: 52, Lon: 5}, 3, 5)
	for i := 0; i < 12; i++ {
		tr.Step()
	}
	for i := 0; i < tr.Len(); i++ {
		_, h := tr.Flight(i)
		if h.Len() != 2 {
			t.Fatalf("flight %d has %d samples; want 2", i, h.Len())
		}
	}
}

func TestTrafficNearest(t *testing.T) {
	tr := NewTraffic(aircraft.Coordinates{Lat: 52, Lon: 5}, 3, 1)
	// The glider orbits at 5 km, the others start further out.
	if got := tr.Nearest(); got != 2 {
		t.Fatalf("Nearest = %d; want 2", got)
	}
}

func TestOrbitKeepsRadius(t *testing.T) {
	tr := NewTraffic(aircraft.Coordinates{Lat: 52, Lon: 5}, 1, 1)
	for i := 0; i < 50; i++ {
		tr.Step()
	}
	a, _ := tr.Flight(0)
	if math.Abs(a.Distance-15) > 0.2 {
		t.Fatalf("orbit distance = %.3f km; want ~15", a.Distance)
	}
	if a.Heading < 0 || a.Heading >= 360 {
		t.Fatalf("heading %.1f not normalised", a.Heading)
	}
}

func TestStepPresentsFrame(t *testing.T) {
	sp, h := newTestSpotter()
	if err := sp.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if h.fb.Frames() != 1 {
		t.Fatalf("frames = %d; want 1", h.fb.Frames())
	}
	if sp.panelKey == "" {
		t.Fatal("info panel not drawn")
	}
}

func TestSquawkSurvivesMapRedraw(t *testing.T) {
	sp, h := newTestSpotter()
	mapColor := hal.RGBATo565(sp.cfg.MapColor)
	for i := 0; i < 30; i++ {
		if err := sp.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if h.fb.Pixel(4, 10) == mapColor {
			t.Fatalf("frame %d: squawk box cleared with the map", i)
		}
	}
}

func TestMapLeavesPanelAlone(t *testing.T) {
	sp, h := newTestSpotter()
	mh := sp.geo.MapHeight()
	img := image.NewRGBA(image.Rect(0, 0, sp.width, sp.height))
	panel := func() []byte {
		h.fb.CopyRGBA(img)
		return bytes.Clone(img.Pix[mh*img.Stride:])
	}

	if err := sp.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	prevKey, prev := sp.panelKey, panel()
	for i := 0; i < 1500; i++ {
		if err := sp.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		cur := panel()
		if sp.panelKey == prevKey && !bytes.Equal(cur, prev) {
			t.Fatalf("frame %d: info panel changed without a redraw", i)
		}
		prevKey, prev = sp.panelKey, cur
	}
}

func TestTapOpensMainMenuOnce(t *testing.T) {
	sp, h := newTestSpotter()
	h.pen.p = touch.Point{X: 100, Y: 100, Z: 100}
	for i := 0; i < 3; i++ {
		if err := sp.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	// A held pen must not also select the row under it.
	if sp.screen != screenMainMenu {
		t.Fatalf("screen = %v; want main menu", sp.screen)
	}
}

func TestPresetRecentresMap(t *testing.T) {
	sp, h := newTestSpotter()
	tap(t, sp, h, 100, 100)
	tap(t, sp, h, 100, menu.MainPresets*menu.RowHeight+10)
	if sp.screen != screenPresets {
		t.Fatalf("screen = %v; want presets", sp.screen)
	}
	tap(t, sp, h, 100, 1*menu.RowHeight+10)
	if sp.screen != screenMap {
		t.Fatalf("screen = %v; want map", sp.screen)
	}
	if got := sp.geo.Center(); got != menu.Presets[1].Center {
		t.Fatalf("centre = %+v; want %+v", got, menu.Presets[1].Center)
	}

	tap(t, sp, h, 100, 100)
	tap(t, sp, h, 100, menu.MainPresets*menu.RowHeight+10)
	tap(t, sp, h, 100, (len(menu.Presets)-1)*menu.RowHeight+10)
	if got := sp.geo.Center(); got != sp.home {
		t.Fatalf("current location centre = %+v; want %+v", got, sp.home)
	}
}

func TestPresetBackReturnsToMainMenu(t *testing.T) {
	sp, h := newTestSpotter()
	tap(t, sp, h, 100, 100)
	tap(t, sp, h, 100, menu.MainPresets*menu.RowHeight+10)
	tap(t, sp, h, 100, len(menu.Presets)*menu.RowHeight+10)
	if sp.screen != screenMainMenu {
		t.Fatalf("screen = %v; want main menu", sp.screen)
	}
}

func TestZoomPanScreen(t *testing.T) {
	sp, h := newTestSpotter()
	zoom := sp.geo.Zoom()
	tap(t, sp, h, 100, 100)
	tap(t, sp, h, 100, menu.MainTrack*menu.RowHeight+10)
	if sp.screen != screenZoomPan {
		t.Fatalf("screen = %v; want zoom/pan", sp.screen)
	}
	tap(t, sp, h, 470, 10)
	if sp.geo.Zoom() != zoom+1 {
		t.Fatalf("zoom = %d; want %d", sp.geo.Zoom(), zoom+1)
	}
	tap(t, sp, h, 240, 125)
	if sp.geo.Zoom() != zoom || sp.geo.Center() != sp.home {
		t.Fatal("reset did not restore zoom and centre")
	}
	tap(t, sp, h, 240, 300)
	if sp.screen != screenMap {
		t.Fatalf("screen = %v; want map", sp.screen)
	}
}

func TestWeatherStationFallsBackToMap(t *testing.T) {
	sp, h := newTestSpotter()
	tap(t, sp, h, 100, 100)
	tap(t, sp, h, 100, menu.MainWeather*menu.RowHeight+10)
	if sp.screen != screenMap {
		t.Fatalf("screen = %v; want map", sp.screen)
	}
	found := false
	for _, l := range *h.log {
		if strings.Contains(l, "weather station") {
			found = true
		}
	}
	if !found {
		t.Fatal("weather station fallback not logged")
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newTestHAL()
	step := guard(h, func() error { panic("boom") })

	err := step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
	if (*h.log)[0] != "PlaneSpotter panic: boom" {
		t.Fatalf("first log line = %q", (*h.log)[0])
	}
	white := 0
	for y := 0; y < 320; y++ {
		for x := 0; x < 480; x++ {
			if h.fb.Pixel(x, y) == 0xFFFF {
				white++
			}
		}
	}
	if white < 480*320/2 {
		t.Fatalf("panic screen mostly not white: %d white pixels", white)
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("takeRunes = %q, %q", p, r)
	}
	if p, r := takeRunes("ab", 5); p != "ab" || r != "" {
		t.Fatalf("short takeRunes = %q, %q", p, r)
	}
}
