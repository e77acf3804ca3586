package menu

import (
	"planespotter/spotter/aircraft"

	"tinygo.org/x/drivers/touch"
)

// Calibration is the raw controller range that spans the screen.
type Calibration struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Valid reports whether Map can be used without dividing by zero.
func (c Calibration) Valid() bool {
	return c.MaxX != c.MinX && c.MaxY != c.MinY
}

// Map scales a raw sample to a w x h screen. Callers must ensure Valid.
func (c Calibration) Map(raw touch.Point, w, h int) aircraft.CoordinatesPixel {
	return aircraft.CoordinatesPixel{
		X: w * (raw.X - c.MinX) / (c.MaxX - c.MinX),
		Y: h * (raw.Y - c.MinY) / (c.MaxY - c.MinY),
	}
}

// TouchPoint samples p and maps the result. ok is false when nothing is
// touching the panel.
func (c Calibration) TouchPoint(p touch.Pointer, w, h int) (pt aircraft.CoordinatesPixel, ok bool) {
	raw := p.ReadTouchPoint()
	if raw.Z == 0 {
		return aircraft.CoordinatesPixel{}, false
	}
	return c.Map(raw, w, h), true
}
