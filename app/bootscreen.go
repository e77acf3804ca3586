package app

import (
	"image/color"

	"planespotter/hal"
	"planespotter/internal/buildinfo"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// bootScreen paints the splash shown until the first frame.
func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	if h == nil {
		return
	}
	s := h.Surface()
	if s == nil {
		return
	}
	w, ht := s.Size()
	s.FillRectangle(0, 0, w, ht, color.RGBA{A: 0xFF})

	font := &proggy.TinySZ8pt7b
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(s, font, 4, 12, "PlaneSpotter "+buildinfo.Short(), fg)
	tinyfont.WriteLine(s, font, 4, 28, msg, fg)
	_ = s.Display()
}
