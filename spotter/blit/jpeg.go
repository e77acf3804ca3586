package blit

import (
	"errors"
	"fmt"
	"io"
)

var errNoDecoder = errors.New("blit: no jpeg decoder")

// Info describes a decoded image and its MCU size in pixels.
type Info struct {
	Width, Height       int
	MCUWidth, MCUHeight int
}

// Tile is one MCU of RGB565 pixels. X and Y are in MCU units; Width and
// Height are in pixels and may be smaller than the MCU size on the image's
// trailing edges. Pixels is row-major with Width pixels per row and is only
// valid until the next call to Next.
type Tile struct {
	X, Y          int
	Width, Height int
	Pixels        []uint16
}

// TileDecoder yields an image one MCU at a time.
type TileDecoder interface {
	Start(r io.Reader) (Info, error)
	Next() (Tile, bool)
	// Abort stops decoding; Next returns false afterwards and Err stays nil.
	Abort()
	Err() error
}

// DrawJPEG decodes name tile by tile and pushes every tile that lands on
// screen, with its top-left corner at (x, y).
func (b *Blitter) DrawJPEG(name string, x, y int16) error {
	w, h := b.surface.Size()
	if x >= w || y >= h {
		return nil
	}
	f, err := b.open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.jpeg(f, name, x, y)
}

func (b *Blitter) jpeg(r io.Reader, name string, x, y int16) error {
	if b.decoder == nil {
		return errNoDecoder
	}
	sw, sh := b.surface.Size()
	if x >= sw || y >= sh {
		return nil
	}

	dec := b.decoder
	info, err := dec.Start(r)
	if err != nil {
		return fmt.Errorf("blit: jpeg %s: %w", name, err)
	}

	maxX := min(int(sw), int(x)+info.Width)
	maxY := min(int(sh), int(y)+info.Height)

	for {
		t, ok := dec.Next()
		if !ok {
			break
		}
		tx := t.X*info.MCUWidth + int(x)
		ty := t.Y*info.MCUHeight + int(y)
		if ty >= maxY {
			dec.Abort()
			break
		}
		if tx >= maxX || tx < 0 || ty < 0 {
			continue
		}

		cw := min(t.Width, maxX-tx)
		ch := min(t.Height, maxY-ty)
		px := t.Pixels
		if cw < t.Width {
			for row := 1; row < ch; row++ {
				copy(px[row*cw:(row+1)*cw], px[row*t.Width:row*t.Width+cw])
			}
		}

		b.surface.SetWindow(int16(tx), int16(ty), int16(cw), int16(ch))
		if err := b.surface.PushPixels(px[:cw*ch]); err != nil {
			dec.Abort()
			return fmt.Errorf("blit: push: %w", err)
		}
	}
	if err := dec.Err(); err != nil {
		return fmt.Errorf("blit: jpeg %s: %w", name, err)
	}
	return nil
}
