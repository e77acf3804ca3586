package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"planespotter/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// guard turns a panic inside step into an error after logging it and painting
// the panic screen.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			logPanic(h.Logger(), v, stack)
			drawPanic(h.Surface(), v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func logPanic(l hal.Logger, v any, stack []byte) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf("PlaneSpotter panic: %v", v))
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		l.WriteLineString(line)
	}
}

func drawPanic(s hal.Surface, v any, stack []byte) {
	if s == nil {
		return
	}
	w, h := s.Size()
	s.FillRectangle(0, 0, w, h, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	font := &proggy.TinySZ8pt7b
	fontHeight := int16(font.GetYAdvance())
	fontOffset := fontHeight * 3 / 4
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = s.Display()
		return
	}

	lines := []string{
		"PlaneSpotter panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{A: 255}
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > h {
				_ = s.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(s, font, fontWidth, 0, y+fontOffset, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.Display()
}

// drawTextLine places runes on a fixed grid so wrapped lines stay aligned.
func drawTextLine(d hal.Surface, font tinyfont.Fonter, fontWidth, x0, baseline int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, baseline, r, fg)
		x += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
