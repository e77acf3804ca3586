// Package text measures and draws single-line labels with tinyfont, keeping
// the current colours, alignment and font as engine state.
package text

import (
	"image/color"

	"planespotter/spotter/gfx"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Alignment selects which point of the label x refers to.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Style is the state applied to every DrawString. FG == BG means the label is
// drawn without clearing its background.
type Style struct {
	FG    color.RGBA
	BG    color.RGBA
	Align Alignment
}

// Display is what the engine draws on.
type Display interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Engine is not safe for concurrent use.
type Engine struct {
	d     Display
	font  tinyfont.Fonter
	style Style
}

var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
)

// New returns an engine drawing white-on-black, left aligned.
func New(d Display, font tinyfont.Fonter) *Engine {
	return &Engine{
		d:     d,
		font:  font,
		style: Style{FG: White, BG: Black, Align: Left},
	}
}

func (e *Engine) Font() tinyfont.Fonter     { return e.font }
func (e *Engine) SetFont(f tinyfont.Fonter) { e.font = f }

func (e *Engine) Style() Style         { return e.style }
func (e *Engine) SetStyle(s Style)     { e.style = s }
func (e *Engine) SetAlign(a Alignment) { e.style.Align = a }

// SetColor makes labels transparent in colour c.
func (e *Engine) SetColor(c color.RGBA) {
	e.style.FG = c
	e.style.BG = c
}

func (e *Engine) SetColors(fg, bg color.RGBA) {
	e.style.FG = fg
	e.style.BG = bg
}

// With runs fn with style s and restores the previous style afterwards.
func (e *Engine) With(s Style, fn func()) {
	prev := e.style
	e.style = s
	defer func() { e.style = prev }()
	fn()
}

// Height is the font's line advance.
func (e *Engine) Height() int {
	return int(e.font.GetYAdvance())
}

// Bounds returns the outbox width and line height of s.
func (e *Engine) Bounds(s string) (w, h int) {
	h = e.Height()
	if s == "" {
		return 0, h
	}
	_, outbox := tinyfont.LineWidth(e.font, s)
	return int(outbox), h
}

// DrawString draws s with its baseline at y. x is the left edge, centre or
// right edge depending on the alignment.
func (e *Engine) DrawString(x, y int, s string) {
	w, h := e.Bounds(s)
	x1 := x
	switch e.style.Align {
	case Center:
		x1 = x - w/2
	case Right:
		x1 = x - w
	}

	if e.style.FG != e.style.BG {
		gfx.FillRect(e.d, x1, y-h-1, w+2, h+3, e.style.BG)
	}
	if s == "" {
		return
	}
	tinyfont.WriteLine(e.d, e.font, int16(x1), int16(y), s, e.style.FG)
}
