package app

import (
	"fmt"
	"image/color"
	"time"

	"planespotter/hal"
	"planespotter/internal/buildinfo"
	"planespotter/spotter/aircraft"
	"planespotter/spotter/blit"
	"planespotter/spotter/geomap"
	"planespotter/spotter/jpegtiles"
	"planespotter/spotter/menu"
	"planespotter/spotter/scene"
	"planespotter/spotter/text"

	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

type screen uint8

const (
	screenMap screen = iota
	screenMainMenu
	screenPresets
	screenZoomPan
)

func (s screen) String() string {
	switch s {
	case screenMap:
		return "map"
	case screenMainMenu:
		return "main menu"
	case screenPresets:
		return "presets"
	case screenZoomPan:
		return "zoom/pan"
	default:
		return "unknown"
	}
}

// panPixels is how far one pan tap moves the map.
const panPixels = 40

var black = color.RGBA{A: 0xff}

// Spotter is the application: it owns the screen state and drives one frame
// per Step call.
type Spotter struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	surface hal.Surface
	width   int
	height  int

	geo     *geomap.Map
	scene   *scene.Renderer
	menu    *menu.Presenter
	traffic *Traffic

	home   aircraft.Coordinates
	screen screen

	touching bool
	// panelKey identifies what the info panel currently shows.
	panelKey string
	dirty    bool
	frames   uint64
}

// NewSpotter wires the renderer stack onto h.
func NewSpotter(h hal.HAL, cfg Config) *Spotter {
	log := h.Logger()
	if log == nil {
		log = hal.NopLogger
	}
	s := h.Surface()
	sw, sh := s.Size()

	if cfg.MapHeight <= 0 || cfg.MapHeight > int(sh) {
		cfg.MapHeight = int(sh) * 25 / 32
	}

	geo := geomap.New(int(sw), cfg.MapHeight, cfg.Center, cfg.Zoom)
	panel := text.New(s, &proggy.TinySZ8pt7b)
	menus := text.New(s, &freesans.Regular12pt7b)
	b := blit.New(s, h.Storage(), log, jpegtiles.New())

	sp := &Spotter{
		h:       h,
		cfg:     cfg,
		log:     log,
		surface: s,
		width:   int(sw),
		height:  int(sh),
		geo:     geo,
		scene: scene.New(s, panel, geo, b, scene.Options{
			SilhouetteDir:      cfg.SilhouetteDir,
			HighlightEmergency: cfg.HighlightEmergency,
			MapColor:           cfg.MapColor,
		}),
		menu:    menu.New(s, menus),
		traffic: NewTraffic(cfg.Center, cfg.SimAircraft, cfg.HistoryEvery),
		home:    cfg.Center,
		dirty:   true,
	}
	if !cfg.Touch.Valid() {
		log.WriteLineString("touch: calibration is degenerate, touch disabled")
	}
	log.WriteLineString(fmt.Sprintf("planespotter %s: %dx%d, map %d px, %d aircraft",
		buildinfo.Long(), sp.width, sp.height, cfg.MapHeight, sp.traffic.Len()))
	return sp
}

// Step polls touch, advances the simulation and redraws the current screen.
func (sp *Spotter) Step() error {
	if pt, ok := sp.pressed(); ok {
		sp.route(pt)
	}
	sp.traffic.Step()
	sp.frames++

	switch sp.screen {
	case screenMap, screenZoomPan:
		sp.drawMap()
	case screenMainMenu:
		if sp.dirty {
			sp.menu.Draw(menu.MainMenu)
		}
	case screenPresets:
		if sp.dirty {
			sp.menu.Draw(menu.PresetMenu)
		}
	}
	sp.dirty = false
	return sp.surface.Display()
}

// pressed reports a touch only on the frame the pen goes down.
func (sp *Spotter) pressed() (aircraft.CoordinatesPixel, bool) {
	if !sp.cfg.Touch.Valid() {
		return aircraft.CoordinatesPixel{}, false
	}
	pt, down := sp.cfg.Touch.TouchPoint(sp.h.Touch(), sp.width, sp.height)
	edge := down && !sp.touching
	sp.touching = down
	return pt, edge
}

func (sp *Spotter) setScreen(s screen) {
	if s != sp.screen {
		sp.log.WriteLineString("screen: " + s.String())
	}
	sp.screen = s
	sp.dirty = true
	sp.panelKey = ""
}

func (sp *Spotter) route(pt aircraft.CoordinatesPixel) {
	switch sp.screen {
	case screenMap:
		sp.setScreen(screenMainMenu)
	case screenMainMenu:
		sp.mainMenu(sp.menu.RowAt(pt.Y))
	case screenPresets:
		sp.presetMenu(sp.menu.RowAt(pt.Y))
	case screenZoomPan:
		if pt.Y >= sp.geo.MapHeight() {
			sp.setScreen(screenMap)
			return
		}
		sp.zoomPan(sp.menu.ZoomPanAt(pt, sp.geo.MapHeight()))
	}
}

func (sp *Spotter) mainMenu(row int) {
	switch row {
	case menu.MainPresets:
		sp.setScreen(screenPresets)
	case menu.MainTrack:
		sp.setScreen(screenZoomPan)
	case menu.MainWeather:
		sp.log.WriteLineString("weather station: not available")
		sp.setScreen(screenMap)
	case menu.MainPlanespotter, menu.MainBack:
		sp.setScreen(screenMap)
	}
}

func (sp *Spotter) presetMenu(row int) {
	switch {
	case row < 0:
		return
	case row >= len(menu.Presets):
		sp.setScreen(screenMainMenu)
		return
	}
	p := menu.Presets[row]
	c := p.Center
	if p.Current {
		c = sp.home
	}
	sp.geo.SetCenter(c)
	sp.log.WriteLineString(fmt.Sprintf("map: centre %s (%.4f, %.4f)", p.Label, c.Lat, c.Lon))
	sp.setScreen(screenMap)
}

func (sp *Spotter) zoomPan(a menu.ZoomPanAction) {
	switch a {
	case menu.ZoomIn:
		sp.geo.ZoomIn()
	case menu.ZoomOut:
		sp.geo.ZoomOut()
	case menu.ZoomReset:
		sp.geo.SetCenter(sp.home)
		sp.geo.SetZoom(sp.cfg.Zoom)
	case menu.PanUp:
		sp.geo.Pan(0, -panPixels)
	case menu.PanDown:
		sp.geo.Pan(0, panPixels)
	case menu.PanLeft:
		sp.geo.Pan(-panPixels, 0)
	case menu.PanRight:
		sp.geo.Pan(panPixels, 0)
	default:
		return
	}
	sp.log.WriteLineString(fmt.Sprintf("map: %s, zoom %d", a, sp.geo.Zoom()))
}

func (sp *Spotter) drawMap() {
	if sp.dirty {
		// Coming back from a full-screen menu.
		sp.surface.FillRectangle(0, 0, int16(sp.width), int16(sp.height), black)
	}
	sp.scene.ClearMap()

	nearest := sp.traffic.Nearest()
	for i := 0; i < sp.traffic.Len(); i++ {
		a, h := sp.traffic.Flight(i)
		sp.scene.DrawHistory(a, h)
	}
	for i := 0; i < sp.traffic.Len(); i++ {
		a, _ := sp.traffic.Flight(i)
		if !sp.geo.Visible(sp.geo.Project(a.Position())) {
			continue
		}
		sp.scene.DrawPlane(a, i == nearest)
	}
	if sp.screen == screenZoomPan {
		sp.menu.DrawZoomPan(sp.geo.MapHeight())
	}
	if nearest < 0 {
		return
	}

	a, _ := sp.traffic.Flight(nearest)
	sp.scene.DrawStatus(a)
	key := panelKey(a)
	if key == sp.panelKey {
		return
	}
	sp.panelKey = key
	sp.scene.DrawInfoBox(a)
	sp.scene.DrawSilhouette(a)
}

// panelKey changes whenever a visible info panel field changes.
func panelKey(a aircraft.Aircraft) string {
	return fmt.Sprintf("%s|%d|%.0f|%.2f|%.0f|%s",
		a.Call, a.Altitude, aircraft.NormalizeHeading(a.Heading), a.Distance, a.Speed, a.Squawk)
}

// New builds the application and returns its per-frame step function for the
// host runners.
func New(h hal.HAL, cfg Config) func() error {
	bootScreen(h, "starting")
	sp := NewSpotter(h, cfg)
	return guard(h, sp.Step)
}

// Run starts the application and never returns (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	bootDiagStart(h)
	step := New(h, cfg)
	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	for {
		start := time.Now()
		if err := step(); err != nil {
			h.Logger().WriteLineString("step: " + err.Error())
			select {}
		}
		if d := interval - time.Since(start); d > 0 {
			time.Sleep(d)
		}
	}
}
