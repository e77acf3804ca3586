package gfx

import "image/color"

// Clip limits drawing to the top-left Width x Height pixels of a Target.
// Width or Height of zero or less means the full extent of the Target.
type Clip struct {
	Target
	Width, Height int
}

// Size reports the clipped extent, so every primitive in this package clips
// to it.
func (c *Clip) Size() (x, y int16) {
	w, h := c.Target.Size()
	if c.Width > 0 && c.Width < int(w) {
		w = int16(c.Width)
	}
	if c.Height > 0 && c.Height < int(h) {
		h = int16(c.Height)
	}
	return w, h
}

func (c *Clip) SetPixel(x, y int16, col color.RGBA) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.Target.SetPixel(x, y, col)
}

func (c *Clip) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	FillRect(clipped{c}, int(x), int(y), int(width), int(height), col)
	return nil
}

// Display is a no-op; presenting the frame is up to the owner of the panel.
func (c *Clip) Display() error { return nil }

// clipped forwards FillRectangle to the wrapped target once FillRect has
// clamped the rectangle to the clip's Size.
type clipped struct{ c *Clip }

func (k clipped) Size() (x, y int16)                { return k.c.Size() }
func (k clipped) SetPixel(x, y int16, c color.RGBA) { k.c.SetPixel(x, y, c) }
func (k clipped) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return k.c.Target.FillRectangle(x, y, width, height, c)
}
