// Package menu draws the full-screen row menus and the zoom/pan overlay, and
// turns raw touch samples into screen positions.
package menu

import (
	"image/color"

	"planespotter/hal"
	"planespotter/spotter/aircraft"
	"planespotter/spotter/gfx"
	"planespotter/spotter/text"
)

const (
	RowHeight  = 40
	FontHeight = 24
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// Menu is a titled list of rows.
type Menu struct {
	Title string
	Rows  []string
}

// Main menu rows.
const (
	MainPresets = iota
	MainTrack
	MainWeather
	MainPlanespotter
	MainBack
)

var MainMenu = Menu{
	Title: "Main Menu",
	Rows:  []string{"Presets", "Track", "Weather Station", "Planespotter", "Back"},
}

// Preset is a named map centre.
type Preset struct {
	Label  string
	Center aircraft.Coordinates
	// Current marks the entry that recentres on the observer.
	Current bool
}

// Presets lists the preset menu entries in row order, without the trailing
// Back row.
var Presets = []Preset{
	{Label: "EHAM, Amsterdam Schiphol", Center: aircraft.Coordinates{Lat: 52.3086, Lon: 4.7639}},
	{Label: "EHLE, Lelystad Airport", Center: aircraft.Coordinates{Lat: 52.4603, Lon: 5.5272}},
	{Label: "EHEH, Eindhoven Airport", Center: aircraft.Coordinates{Lat: 51.4501, Lon: 5.3745}},
	{Label: "EHRD, Rotterdam Airport", Center: aircraft.Coordinates{Lat: 51.9569, Lon: 4.4372}},
	{Label: "EHKD, Den Helder", Center: aircraft.Coordinates{Lat: 52.9228, Lon: 4.7806}},
	{Label: "EHTX, Texel Airport", Center: aircraft.Coordinates{Lat: 53.1153, Lon: 4.8336}},
	{Label: "Current location", Current: true},
}

// PresetMenu is built from Presets plus a Back row.
var PresetMenu = presetMenu()

func presetMenu() Menu {
	rows := make([]string, 0, len(Presets)+1)
	for _, p := range Presets {
		rows = append(rows, p.Label)
	}
	return Menu{Title: "Preset Menu", Rows: append(rows, "Back")}
}

// Presenter draws menus and remembers how many rows are on screen for
// hit-testing.
type Presenter struct {
	surface hal.Surface
	text    *text.Engine
	rows    int
}

func New(s hal.Surface, t *text.Engine) *Presenter {
	return &Presenter{surface: s, text: t}
}

// label draws s with its top edge at y.
func (p *Presenter) label(x, y int, s string) {
	p.text.DrawString(x, y+p.text.Height()*3/4, s)
}

// DrawList clears the screen and draws title and rows, one per RowHeight band
// with a divider on top of each band.
func (p *Presenter) DrawList(title string, rows []string) {
	w, h := p.surface.Size()
	gfx.FillRect(p.surface, 0, 0, int(w), int(h), black)

	prev := p.text.Style()
	defer p.text.SetStyle(prev)
	p.text.SetStyle(text.Style{FG: white, BG: white, Align: text.Left})

	p.label(10, RowHeight-FontHeight/2, title)
	for i, row := range rows {
		gfx.HLine(p.surface, 0, i*RowHeight, int(w), white)
		p.label(20, i*RowHeight+(RowHeight-FontHeight)/2, row)
	}
	p.rows = len(rows)
}

func (p *Presenter) Draw(m Menu) { p.DrawList(m.Title, m.Rows) }

// RowAt returns the row under screen y in the last drawn list, or -1.
func (p *Presenter) RowAt(y int) int {
	if y < 0 {
		return -1
	}
	row := y / RowHeight
	if row >= p.rows {
		return -1
	}
	return row
}

// ZoomPanAction is a touch zone of the map overlay.
type ZoomPanAction uint8

const (
	ZoomPanNone ZoomPanAction = iota
	ZoomIn
	ZoomOut
	ZoomReset
	PanUp
	PanDown
	PanLeft
	PanRight
)

func (a ZoomPanAction) String() string {
	switch a {
	case ZoomIn:
		return "zoom in"
	case ZoomOut:
		return "zoom out"
	case ZoomReset:
		return "reset"
	case PanUp:
		return "up"
	case PanDown:
		return "down"
	case PanLeft:
		return "left"
	case PanRight:
		return "right"
	default:
		return "none"
	}
}

// DrawZoomPan labels the overlay zones on top of the map.
func (p *Presenter) DrawZoomPan(mapHeight int) {
	w, _ := p.surface.Size()
	width := int(w)

	prev := p.text.Style()
	defer p.text.SetStyle(prev)
	p.text.SetStyle(text.Style{FG: white, BG: black, Align: text.Left})

	p.label(width-60, 40-FontHeight, "Zoom in")
	p.label(width-60, mapHeight-10-FontHeight, "Zoom out")
	p.label(width/2-20, mapHeight/2-FontHeight, "Reset")
	p.label(width/2-20, 4, "Up")
	p.label(width/2-20, mapHeight-FontHeight, "Down")
	p.label(4, mapHeight/2-FontHeight, "Left")
	p.label(width-20, mapHeight/2-FontHeight, "Right")
}

// ZoomPanAt maps a point in the map area onto a 3x3 grid of overlay zones.
func (p *Presenter) ZoomPanAt(pt aircraft.CoordinatesPixel, mapHeight int) ZoomPanAction {
	w, _ := p.surface.Size()
	if pt.X < 0 || pt.Y < 0 || pt.X >= int(w) || pt.Y >= mapHeight {
		return ZoomPanNone
	}
	col := pt.X * 3 / int(w)
	row := pt.Y * 3 / mapHeight
	switch [2]int{col, row} {
	case [2]int{1, 0}:
		return PanUp
	case [2]int{1, 2}:
		return PanDown
	case [2]int{0, 1}:
		return PanLeft
	case [2]int{2, 1}:
		return PanRight
	case [2]int{1, 1}:
		return ZoomReset
	case [2]int{2, 0}:
		return ZoomIn
	case [2]int{2, 2}:
		return ZoomOut
	}
	return ZoomPanNone
}
