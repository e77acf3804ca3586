//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal previews the framebuffer in a terminal using half-block cells
// (two panel rows per character row). Mouse clicks become touch samples;
// Esc, q or Ctrl-C quit.
func RunTerminal(ctx context.Context, opts HostOptions, newApp func(HAL) func() error, hz int) error {
	if hz <= 0 {
		hz = 15
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	h := newHost(opts)
	step := newApp(h)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()

	scratch := image.NewRGBA(image.Rect(0, 0, h.fb.width, h.fb.height))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					cx, cy := ev.Position()
					px, py := cellToPixel(s, h.fb, cx, cy)
					h.touch.press(px, py)
				} else {
					h.touch.release()
				}
			case *tcell.EventResize:
				s.Sync()
			}

		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			drawTerminal(s, h.fb, scratch)
		}
	}
}

func drawTerminal(s tcell.Screen, fb *Framebuffer, scratch *image.RGBA) {
	fb.CopyRGBA(scratch)
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	at := func(x, y int) tcell.Color {
		c := scratch.RGBAAt(x, y)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}

	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * fb.height / (2 * rows)
		bot := (2*cy + 1) * fb.height / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			x := cx * fb.width / cols
			style := tcell.StyleDefault.Foreground(at(x, top)).Background(at(x, bot))
			s.SetContent(cx, cy, '▀', nil, style)
		}
	}
	s.Show()
}

func cellToPixel(s tcell.Screen, fb *Framebuffer, cx, cy int) (int, int) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return cx * fb.width / cols, cy * fb.height / rows
}
