// Package geomap projects WGS84 coordinates onto the map area of the screen
// with Web Mercator (EPSG:3857) at slippy-map zoom levels.
package geomap

import (
	"math"

	"planespotter/spotter/aircraft"

	"github.com/wroge/wgs84"
)

const (
	MinZoom = 1
	MaxZoom = 18

	// metres per pixel at zoom 0 on the equator for 256px tiles.
	resolutionZoom0 = 2 * math.Pi * 6378137 / 256
)

// Map is a fixed-size view on a Mercator plane.
type Map struct {
	width     int
	mapHeight int
	zoom      int
	center    aircraft.Coordinates
	cx, cy    float64

	toMercator func(a, b, c float64) (float64, float64, float64)
	toWGS84    func(a, b, c float64) (float64, float64, float64)
}

// New returns a map width x mapHeight pixels centred on center.
func New(width, mapHeight int, center aircraft.Coordinates, zoom int) *Map {
	epsg := wgs84.EPSG()
	m := &Map{
		width:      width,
		mapHeight:  mapHeight,
		toMercator: epsg.Transform(4326, 3857),
		toWGS84:    epsg.Transform(3857, 4326),
	}
	m.SetZoom(zoom)
	m.SetCenter(center)
	return m
}

func (m *Map) MapHeight() int { return m.mapHeight }
func (m *Map) Width() int     { return m.width }
func (m *Map) Zoom() int      { return m.zoom }

func (m *Map) Center() aircraft.Coordinates { return m.center }

// SetCenter moves the view so that c is in the middle of the map area.
func (m *Map) SetCenter(c aircraft.Coordinates) {
	m.center = c
	m.cx, m.cy, _ = m.toMercator(c.Lon, c.Lat, 0)
}

// SetZoom clamps z to [MinZoom, MaxZoom].
func (m *Map) SetZoom(z int) {
	m.zoom = max(MinZoom, min(MaxZoom, z))
}

func (m *Map) ZoomIn()  { m.SetZoom(m.zoom + 1) }
func (m *Map) ZoomOut() { m.SetZoom(m.zoom - 1) }

// Pan shifts the view by dx, dy pixels; positive dy moves the view south.
func (m *Map) Pan(dx, dy int) {
	res := m.resolution()
	x := m.cx + float64(dx)*res
	y := m.cy - float64(dy)*res
	lon, lat, _ := m.toWGS84(x, y, 0)
	m.center = aircraft.Coordinates{Lat: lat, Lon: lon}
	m.cx, m.cy = x, y
}

// Project converts c to a pixel position. Points outside the view produce
// coordinates outside [0, width) x [0, mapHeight).
func (m *Map) Project(c aircraft.Coordinates) aircraft.CoordinatesPixel {
	x, y, _ := m.toMercator(c.Lon, c.Lat, 0)
	res := m.resolution()
	return aircraft.CoordinatesPixel{
		X: m.width/2 + int(math.Round((x-m.cx)/res)),
		Y: m.mapHeight/2 - int(math.Round((y-m.cy)/res)),
	}
}

// Visible reports whether p lies inside the map area.
func (m *Map) Visible(p aircraft.CoordinatesPixel) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.mapHeight
}

func (m *Map) resolution() float64 {
	return resolutionZoom0 / math.Exp2(float64(m.zoom))
}
