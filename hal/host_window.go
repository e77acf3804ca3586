//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"

	"planespotter/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowScale is the integer zoom applied to the panel in the desktop window.
const windowScale = 2

// RunWindow opens a desktop window showing the framebuffer. Left mouse
// presses become touch samples, F12 saves a PNG snapshot and Esc quits.
// It blocks until the window closes.
func RunWindow(opts HostOptions, newApp func(HAL) func() error) error {
	h := newHost(opts)
	g := &hostGame{h: h, step: newApp(h)}

	ebiten.SetWindowTitle("PlaneSpotter (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*windowScale, h.fb.height*windowScale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	img   *image.RGBA
	panel *ebiten.Image
	shots int
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots++
		if err := g.h.saveSnapshot(fmt.Sprintf("planespotter-%03d.png", g.shots)); err != nil {
			g.h.logger.WriteLineString(err.Error())
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.h.touch.press(ebiten.CursorPosition())
	} else {
		g.h.touch.release()
	}
	if g.step == nil {
		return nil
	}
	return g.step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.panel == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.panel = ebiten.NewImage(fb.width, fb.height)
	}
	fb.CopyRGBA(g.img)
	g.panel.WritePixels(g.img.Pix)
	screen.DrawImage(g.panel, nil)
}

func (g *hostGame) Layout(_, _ int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
