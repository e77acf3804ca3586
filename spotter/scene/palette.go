package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of altitude bands.
const PaletteSize = 10

// bandFeet is the altitude covered by one palette entry.
const bandFeet = 4000

// Palette maps altitude bands to trail colours, from green near the ground
// through yellow and red to magenta at cruise level.
var Palette = altitudePalette()

func altitudePalette() [PaletteSize]color.RGBA {
	var p [PaletteSize]color.RGBA
	for i := range p {
		// Hue walks from 130 (green) down to -30 (magenta).
		hue := 130 - float64(i)*160/float64(PaletteSize-1)
		if hue < 0 {
			hue += 360
		}
		r, g, b := colorful.Hcl(hue, 0.9, 0.65).Clamped().RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p
}

// AltitudeBand returns the palette index for an altitude in feet.
func AltitudeBand(alt int) int {
	if alt < 0 {
		return 0
	}
	return min(alt/bandFeet, PaletteSize-1)
}

// AltitudeColor is Palette[AltitudeBand(alt)].
func AltitudeColor(alt int) color.RGBA {
	return Palette[AltitudeBand(alt)]
}
