package scene

import (
	"strconv"

	"planespotter/spotter/aircraft"
	"planespotter/spotter/gfx"
	"planespotter/spotter/text"
)

// Info panel rows, relative to the bottom of the map.
const (
	row1     = 7
	row2     = 20
	row3     = 31
	rowRoute = 52
	rowStrip = 15
)

var compassDeg = [4]float64{0, 170, 190, 0}

const compassRadius = 6

type panelLayout struct {
	line1, line2, line3, line5 int
	tab1, tabBoxA, tab2        int
	tabBoxB, tab3, tab4        int
	silhouetteX                int
}

func (r *Renderer) layout() panelLayout {
	w, _ := r.surface.Size()
	width := int(w)
	mh := r.geo.MapHeight()
	tab3 := width/2 + 91
	return panelLayout{
		line1:       mh + row1,
		line2:       mh + row2,
		line3:       mh + row3,
		line5:       mh + rowRoute,
		tab1:        8,
		tabBoxA:     3,
		tab2:        68,
		tabBoxB:     width/2 + 86,
		tab3:        tab3,
		tab4:        tab3 + 60,
		silhouetteX: width/2 - 42,
	}
}

// label draws s with its top edge at y.
func (r *Renderer) label(x, y int, s string) {
	r.text.DrawString(x, y+r.ascent(), s)
}

func (r *Renderer) ascent() int {
	return r.text.Height() * 3 / 4
}

// field draws a green caption followed by a white value.
func (r *Renderer) field(captionX, valueX, y int, caption, value string) {
	r.text.SetColor(colorGreen)
	r.label(captionX, y, caption)
	r.text.SetColor(colorWhite)
	r.label(valueX, y, value)
}

// DrawInfoBox fills the panel below the map with the details of a and
// returns its route summary. Nothing is drawn when a has no callsign.
func (r *Renderer) DrawInfoBox(a aircraft.Aircraft) string {
	if a.Call == "" {
		return ""
	}
	sw, sh := r.surface.Size()
	width, height := int(sw), int(sh)
	mh := r.geo.MapHeight()
	l := r.layout()

	gfx.FillRect(r.surface, 0, mh, width, height-mh, colorSkyBlue)
	gfx.FillRoundRect(r.surface, l.tabBoxA, l.line1, 151, 42, 4, colorBlack)
	gfx.FillRoundRect(r.surface, l.tabBoxB, l.line1, 151, 42, 4, colorBlack)
	gfx.RoundRect(r.surface, 156, l.line1, 168, 42, 4, colorBlack)

	prev := r.text.Style()
	defer r.text.SetStyle(prev)
	r.text.SetAlign(text.Left)

	kind := Classify(a)
	r.text.SetColor(colorGreen)
	r.label(l.tab1, l.line1, "Type: ")
	r.text.SetColor(kind.Color)
	r.label(l.tab2, l.line1, kind.Label)

	r.field(l.tab3, l.tab4, l.line1, "Reg: ", a.Registration)

	gfx.FillRoundRect(r.surface, 156, l.line1, 168, 16, 3, colorBlack)
	r.text.SetColor(colorWhite)
	r.label(159, l.line1, a.AircraftType)

	r.field(l.tab1, l.tab2, l.line2, "Altitude: ", strconv.Itoa(a.Altitude)+" ft")
	heading := aircraft.NormalizeHeading(a.Heading)
	r.field(l.tab3, l.tab4, l.line2, "Heading: ", strconv.FormatFloat(heading, 'f', 0, 64))
	r.drawCompass(heading, aircraft.CoordinatesPixel{X: l.tab4 + 60, Y: mh + 29})

	r.field(l.tab1, l.tab2, l.line3, "Distance: ", strconv.FormatFloat(a.Distance, 'f', 2, 64)+" km")
	r.field(l.tab3, l.tab4, l.line3, "HSpeed: ", strconv.FormatFloat(a.Speed, 'f', 0, 64)+" kn")

	route := RouteSummary(a)
	if route != "" {
		gfx.FillRoundRect(r.surface, l.tabBoxA, l.line5, width-4, rowStrip, 2, colorBlack)
		r.text.SetColor(colorWhite)
		r.label(l.tab1, l.line5, a.FromCode+a.FromShort)
		r.text.SetColor(colorGreen)
		r.label(width/2-55, l.line5, ": From")
		r.label(width/2-10, l.line5, "To :")
		r.text.SetColor(colorWhite)
		r.label(width/2+40, l.line5, a.ToCode+a.ToShort)
	}
	return route
}

// RouteSummary formats origin and destination, or returns "" unless both are
// known.
func RouteSummary(a aircraft.Aircraft) string {
	if a.FromShort == "" || a.ToShort == "" {
		return ""
	}
	return a.FromCode + a.FromShort + " ⇒ " + a.ToCode + a.ToShort
}

// drawCompass draws a small dial with a needle pointing along heading.
func (r *Renderer) drawCompass(heading float64, c aircraft.CoordinatesPixel) int {
	gfx.Circle(r.surface, c.X, c.Y, 8, colorWhite)
	n := 0
	for i := 0; i+1 < len(compassDeg); i++ {
		p1 := polar(c, compassDeg[i]+heading, compassRadius)
		p2 := polar(c, compassDeg[i+1]+heading, compassRadius)
		gfx.Line(r.surface, p1.X, p1.Y, p2.X, p2.Y, colorRed)
		n++
	}
	return n
}

// DrawStatus draws the squawk box, the emergency badge and the operator in the
// strip along the top of the map. The map is cleared every frame, so this has
// to follow ClearMap each time.
func (r *Renderer) DrawStatus(a aircraft.Aircraft) {
	if a.Call == "" {
		return
	}
	prev := r.text.Style()
	defer r.text.SetStyle(prev)
	r.text.SetAlign(text.Left)

	r.drawOperator(a.Operator)
	r.drawSquawk(a.Squawk)
}

func (r *Renderer) drawOperator(op string) {
	if op == "" {
		return
	}
	w, _ := r.surface.Size()
	r.text.With(text.Style{FG: colorWhite, BG: colorBlack, Align: text.Right}, func() {
		r.label(int(w)-4, 3, op)
	})
}

func (r *Renderer) drawSquawk(squawk string) {
	emergency := r.opts.HighlightEmergency && IsEmergency(squawk)
	value := colorWhite
	if emergency {
		value = colorRed
		gfx.FillRoundRect(r.surface, 190, 3, 80, 17, 2, colorBlack)
		r.text.SetColor(colorRed)
		r.label(193, 3, "EMERGENCY")
	}

	gfx.FillRoundRect(r.surface, 3, 3, 90, rowStrip, 2, colorBlack)
	r.text.SetColor(colorGreen)
	r.label(6, 3, "Squawk: ")
	capW, _ := r.text.Bounds("Squawk: ")
	r.text.SetColor(value)
	r.label(6+capW, 3, squawk)
}
