// Package gfx rasterizes lines, triangles, circles and rounded rectangles onto
// any panel that can set single pixels and fill rectangles.
//
// Everything is clipped here: panel drivers such as ili9341 reject
// out-of-bounds rectangles instead of clipping them.
package gfx

import (
	"image/color"
	"math"
)

// Target is the subset of a panel the rasterizer needs.
type Target interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Pixel sets one pixel if it is on screen.
func Pixel(t Target, x, y int, c color.RGBA) {
	w, h := t.Size()
	if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
		return
	}
	t.SetPixel(int16(x), int16(y), c)
}

// FillRect fills the on-screen part of a rectangle.
func FillRect(t Target, x, y, w, h int, c color.RGBA) {
	sw, sh := t.Size()
	x0 := clamp(x, 0, int(sw))
	y0 := clamp(y, 0, int(sh))
	x1 := clamp(x+w, 0, int(sw))
	y1 := clamp(y+h, 0, int(sh))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	_ = t.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), c)
}

// HLine draws a horizontal line of w pixels starting at x.
func HLine(t Target, x, y, w int, c color.RGBA) {
	FillRect(t, x, y, w, 1, c)
}

// VLine draws a vertical line of h pixels starting at y.
func VLine(t Target, x, y, h int, c color.RGBA) {
	FillRect(t, x, y, 1, h, c)
}

// Line draws a 1px Bresenham line including both end points.
func Line(t Target, x0, y0, x1, y1 int, c color.RGBA) {
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		HLine(t, x0, y0, x1-x0+1, c)
		return
	}
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		VLine(t, x0, y0, y1-y0+1, c)
		return
	}

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		Pixel(t, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// Rect draws a rectangle outline.
func Rect(t Target, x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	HLine(t, x, y, w, c)
	HLine(t, x, y+h-1, w, c)
	VLine(t, x, y, h, c)
	VLine(t, x+w-1, y, h, c)
}

// Triangle draws a triangle outline.
func Triangle(t Target, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	Line(t, x0, y0, x1, y1, c)
	Line(t, x1, y1, x2, y2, c)
	Line(t, x2, y2, x0, y0, c)
}

type point struct {
	x, y int
}

// FillTriangle fills a triangle with horizontal spans.
func FillTriangle(t Target, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	top, mid, bot := point{x0, y0}, point{x1, y1}, point{x2, y2}
	if mid.y < top.y {
		top, mid = mid, top
	}
	if bot.y < mid.y {
		mid, bot = bot, mid
	}
	if mid.y < top.y {
		top, mid = mid, top
	}

	if bot.y == top.y {
		lo := min(top.x, mid.x, bot.x)
		hi := max(top.x, mid.x, bot.x)
		HLine(t, lo, top.y, hi-lo+1, c)
		return
	}

	for y := top.y; y <= bot.y; y++ {
		var xa, xb float64
		if y < mid.y {
			xa = edgeX(top, mid, y)
		} else {
			xa = edgeX(mid, bot, y)
		}
		xb = edgeX(top, bot, y)
		a := int(math.Round(xa))
		b := int(math.Round(xb))
		if a > b {
			a, b = b, a
		}
		HLine(t, a, y, b-a+1, c)
	}
}

func edgeX(a, b point, y int) float64 {
	if b.y == a.y {
		return float64(a.x)
	}
	f := float64(y-a.y) / float64(b.y-a.y)
	return float64(a.x) + f*float64(b.x-a.x)
}

// Circle draws a midpoint circle outline.
func Circle(t Target, cx, cy, r int, c color.RGBA) {
	arcs(t, cx, cy, r, quadAll, c)
}

// FillCircle fills a circle.
func FillCircle(t Target, cx, cy, r int, c color.RGBA) {
	fillArcs(t, cx, cy, r, quadAll, c)
}

// RoundRect draws a rectangle outline with rounded corners of radius r.
func RoundRect(t Target, x, y, w, h, r int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = cornerRadius(w, h, r)
	if r < 1 {
		Rect(t, x, y, w, h, c)
		return
	}
	HLine(t, x+r, y, w-2*r, c)
	HLine(t, x+r, y+h-1, w-2*r, c)
	VLine(t, x, y+r, h-2*r, c)
	VLine(t, x+w-1, y+r, h-2*r, c)
	arcs(t, x+r, y+r, r, quadTopLeft, c)
	arcs(t, x+w-r-1, y+r, r, quadTopRight, c)
	arcs(t, x+w-r-1, y+h-r-1, r, quadBottomRight, c)
	arcs(t, x+r, y+h-r-1, r, quadBottomLeft, c)
}

// FillRoundRect fills a rectangle with rounded corners of radius r.
func FillRoundRect(t Target, x, y, w, h, r int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = cornerRadius(w, h, r)
	if r < 1 {
		FillRect(t, x, y, w, h, c)
		return
	}
	FillRect(t, x, y+r, w, h-2*r, c)
	fillArcs(t, x+r, y+r, r, quadTopLeft, c)
	fillArcs(t, x+w-r-1, y+r, r, quadTopRight, c)
	fillArcs(t, x+w-r-1, y+h-r-1, r, quadBottomRight, c)
	fillArcs(t, x+r, y+h-r-1, r, quadBottomLeft, c)
	FillRect(t, x+r, y, w-2*r, r, c)
	FillRect(t, x+r, y+h-r, w-2*r, r, c)
}

type quadrant uint8

const (
	quadTopLeft quadrant = 1 << iota
	quadTopRight
	quadBottomRight
	quadBottomLeft

	quadAll = quadTopLeft | quadTopRight | quadBottomRight | quadBottomLeft
)

func arcs(t Target, cx, cy, r int, q quadrant, c color.RGBA) {
	if r < 0 {
		return
	}
	x := r
	y := 0
	err := 0
	for x >= y {
		if q&quadTopLeft != 0 {
			Pixel(t, cx-x, cy-y, c)
			Pixel(t, cx-y, cy-x, c)
		}
		if q&quadTopRight != 0 {
			Pixel(t, cx+x, cy-y, c)
			Pixel(t, cx+y, cy-x, c)
		}
		if q&quadBottomRight != 0 {
			Pixel(t, cx+x, cy+y, c)
			Pixel(t, cx+y, cy+x, c)
		}
		if q&quadBottomLeft != 0 {
			Pixel(t, cx-x, cy+y, c)
			Pixel(t, cx-y, cy+x, c)
		}
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func fillArcs(t Target, cx, cy, r int, q quadrant, c color.RGBA) {
	for y := -r; y <= r; y++ {
		dx := int(math.Sqrt(float64(r*r - y*y)))
		top := y <= 0
		if (top && q&quadTopLeft != 0) || (!top && q&quadBottomLeft != 0) {
			HLine(t, cx-dx, cy+y, dx+1, c)
		}
		if (top && q&quadTopRight != 0) || (!top && q&quadBottomRight != 0) {
			HLine(t, cx, cy+y, dx+1, c)
		}
	}
}

func cornerRadius(w, h, r int) int {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
