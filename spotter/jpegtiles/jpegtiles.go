// Package jpegtiles adapts the standard JPEG decoder to blit.TileDecoder,
// handing out the decoded image as 16x16 RGB565 tiles in raster order.
//
// image/jpeg has no incremental mode, so the whole image is decoded before the
// first tile. MaxPixels bounds that buffer.
package jpegtiles

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"planespotter/hal"
	"planespotter/spotter/blit"
)

// MCUSize is the edge length of an emitted tile.
const MCUSize = 16

// MaxPixels is the largest image Start accepts, one 480x320 screen.
const MaxPixels = 480 * 320

var (
	ErrTooLarge   = errors.New("jpegtiles: image too large")
	errNotStarted = errors.New("jpegtiles: Next before Start")
)

// Decoder reuses one tile buffer for every Next call.
type Decoder struct {
	img     image.Image
	info    blit.Info
	cols    int
	rows    int
	next    int
	stopped bool
	err     error
	buf     [MCUSize * MCUSize]uint16
}

var _ blit.TileDecoder = (*Decoder)(nil)

// New returns an idle decoder.
func New() *Decoder { return &Decoder{} }

// Start decodes the whole stream and resets tile iteration.
func (d *Decoder) Start(r io.Reader) (blit.Info, error) {
	*d = Decoder{}
	br := bufio.NewReader(r)
	var head bytes.Buffer
	cfg, err := jpeg.DecodeConfig(io.TeeReader(br, &head))
	if err != nil {
		return blit.Info{}, d.fail(fmt.Errorf("jpegtiles: decode: %w", err))
	}
	if cfg.Width*cfg.Height > MaxPixels {
		return blit.Info{}, d.fail(fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height))
	}
	img, err := jpeg.Decode(io.MultiReader(&head, br))
	if err != nil {
		return blit.Info{}, d.fail(fmt.Errorf("jpegtiles: decode: %w", err))
	}
	b := img.Bounds()
	d.img = img
	d.info = blit.Info{
		Width:     b.Dx(),
		Height:    b.Dy(),
		MCUWidth:  MCUSize,
		MCUHeight: MCUSize,
	}
	d.cols = (b.Dx() + MCUSize - 1) / MCUSize
	d.rows = (b.Dy() + MCUSize - 1) / MCUSize
	return d.info, nil
}

// Next converts and returns the following tile.
func (d *Decoder) Next() (blit.Tile, bool) {
	if d.stopped {
		return blit.Tile{}, false
	}
	if d.img == nil {
		d.err = errNotStarted
		d.stopped = true
		return blit.Tile{}, false
	}
	if d.next >= d.cols*d.rows {
		d.stopped = true
		return blit.Tile{}, false
	}

	tx, ty := d.next%d.cols, d.next/d.cols
	d.next++

	b := d.img.Bounds()
	x0 := b.Min.X + tx*MCUSize
	y0 := b.Min.Y + ty*MCUSize
	w := min(MCUSize, b.Max.X-x0)
	h := min(MCUSize, b.Max.Y-y0)

	i := 0
	switch img := d.img.(type) {
	case *image.YCbCr:
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				yi := img.YOffset(x, y)
				ci := img.COffset(x, y)
				r, g, bl := color.YCbCrToRGB(img.Y[yi], img.Cb[ci], img.Cr[ci])
				d.buf[i] = hal.RGB565(r, g, bl)
				i++
			}
		}
	case *image.Gray:
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				v := img.GrayAt(x, y).Y
				d.buf[i] = hal.RGB565(v, v, v)
				i++
			}
		}
	default:
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				d.buf[i] = hal.RGB565(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
				i++
			}
		}
	}

	return blit.Tile{X: tx, Y: ty, Width: w, Height: h, Pixels: d.buf[:i]}, true
}

// Abort ends iteration early. It is not an error.
func (d *Decoder) Abort() {
	d.stopped = true
	d.img = nil
}

func (d *Decoder) Err() error { return d.err }

func (d *Decoder) fail(err error) error {
	d.err = err
	d.stopped = true
	return err
}
