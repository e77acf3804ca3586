package hal

import "image/color"

// RGB565 packs 8-bit channels into rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGBATo565 drops alpha and packs c.
func RGBATo565(c color.RGBA) uint16 { return RGB565(c.R, c.G, c.B) }

// RGB888From565 expands p to full-range 8-bit channels.
func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBAFrom565 is RGB888From565 with an opaque alpha.
func RGBAFrom565(p uint16) color.RGBA {
	r, g, b := RGB888From565(p)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
