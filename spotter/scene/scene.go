// Package scene composes the map screen: aircraft trails, heading markers,
// callsign labels and the info panel below the map.
package scene

import (
	"image/color"
	"math"
	"path"

	"planespotter/hal"
	"planespotter/spotter/aircraft"
	"planespotter/spotter/blit"
	"planespotter/spotter/gfx"
	"planespotter/spotter/text"
)

// GeoMap projects coordinates into the map area at the top of the screen.
type GeoMap interface {
	Project(c aircraft.Coordinates) aircraft.CoordinatesPixel
	MapHeight() int
}

// Options tunes optional parts of the scene.
type Options struct {
	// SilhouetteDir holds <AircraftType>.bmp images.
	SilhouetteDir string
	// HighlightEmergency marks squawk 7500, 7600 and 7700.
	HighlightEmergency bool
	// MapColor fills the map area on ClearMap.
	MapColor color.RGBA
}

// Renderer draws onto a single surface and is not safe for concurrent use.
//
// Trails, markers and labels go through mapArea, which stops them at the
// bottom of the map so the info panel below is only touched by DrawInfoBox.
type Renderer struct {
	surface hal.Surface
	text    *text.Engine
	geo     GeoMap
	blit    *blit.Blitter
	opts    Options

	mapArea *gfx.Clip
	labels  *text.Engine
}

func New(s hal.Surface, t *text.Engine, geo GeoMap, b *blit.Blitter, opts Options) *Renderer {
	area := &gfx.Clip{Target: s, Height: geo.MapHeight()}
	return &Renderer{
		surface: s,
		text:    t,
		geo:     geo,
		blit:    b,
		opts:    opts,
		mapArea: area,
		labels:  text.New(area, t.Font()),
	}
}

func (r *Renderer) SetGeoMap(geo GeoMap) {
	r.geo = geo
	r.mapArea.Height = geo.MapHeight()
}

// ClearMap fills the map area.
func (r *Renderer) ClearMap() {
	w, _ := r.surface.Size()
	gfx.FillRect(r.mapArea, 0, 0, int(w), r.geo.MapHeight(), r.opts.MapColor)
}

// DrawHistory draws the trail of a from its current position back through
// the stored samples, newest first, and returns the number of segments drawn.
func (r *Renderer) DrawHistory(a aircraft.Aircraft, h *aircraft.AircraftHistory) int {
	last := a.Position()
	n := h.Len()
	for k := 0; k < n; k++ {
		pos := h.Recent(k)
		p1 := r.geo.Project(pos.Coordinates)
		p2 := r.geo.Project(last)
		c := AltitudeColor(pos.Altitude)
		gfx.Line(r.mapArea, p1.X, p1.Y, p2.X, p2.Y, c)
		gfx.Line(r.mapArea, p1.X+1, p1.Y+1, p2.X+1, p2.Y+1, c)
		last = pos.Coordinates
	}
	return n
}

// Marker shape as polar offsets from the aircraft position: nose, right
// wing, tail, left wing, nose.
var (
	markerDeg    = [5]float64{0, -150, 180, 150, 0}
	markerRadius = [5]float64{10, 10, 5, 10, 10}
)

// MarkerVertices returns the marker outline for heading around origin.
func MarkerVertices(heading float64, origin aircraft.CoordinatesPixel) [5]aircraft.CoordinatesPixel {
	var v [5]aircraft.CoordinatesPixel
	for i := range v {
		v[i] = polar(origin, markerDeg[i]+heading, markerRadius[i])
	}
	return v
}

// polar places a point r pixels from origin. Angles are compass degrees;
// the -450 offset turns them into screen angles.
func polar(origin aircraft.CoordinatesPixel, deg, r float64) aircraft.CoordinatesPixel {
	rad := aircraft.NormalizeHeading(-450+deg) * math.Pi / 180
	return aircraft.CoordinatesPixel{
		X: trunc(math.Cos(rad)*r + float64(origin.X)),
		Y: trunc(math.Sin(rad)*r + float64(origin.Y)),
	}
}

// trunc truncates toward zero after dropping floating point noise.
func trunc(v float64) int {
	return int(math.Round(v*1e6) / 1e6)
}

// DrawPlane draws the callsign and heading marker of a. Special aircraft get
// a filled marker.
func (r *Renderer) DrawPlane(a aircraft.Aircraft, special bool) {
	p := r.geo.Project(a.Position())

	r.labels.With(text.Style{FG: colorWhite, BG: colorBlack, Align: text.Center}, func() {
		r.labels.DrawString(p.X, p.Y, a.Call)
	})

	v := MarkerVertices(a.Heading, p)
	if special {
		gfx.FillTriangle(r.mapArea, v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y, colorRed)
		gfx.FillTriangle(r.mapArea, v[2].X, v[2].Y, v[3].X, v[3].Y, v[4].X, v[4].Y, colorRed)
		return
	}
	for i := 1; i < len(v); i++ {
		gfx.Line(r.mapArea, v[i].X, v[i].Y, v[i-1].X, v[i-1].Y, colorRed)
	}
}

// DrawSilhouette blits the type's side view into the info panel. Missing
// images are logged by the blitter and leave the panel as is.
func (r *Renderer) DrawSilhouette(a aircraft.Aircraft) {
	if r.blit == nil || a.AircraftType == "" {
		return
	}
	l := r.layout()
	name := path.Join(r.opts.SilhouetteDir, a.AircraftType+".bmp")
	r.blit.Draw(name, int16(l.silhouetteX), int16(r.geo.MapHeight()+24))
}
