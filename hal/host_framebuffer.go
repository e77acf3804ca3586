//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"tinygo.org/x/drivers"
)

// Framebuffer is an in-memory RGB565 panel used on the host.
//
// It models the panel in its native orientation: mirrored rotations
// (Rotation0Mirror and up) flip rows vertically, the others are recorded only.
type Framebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	rotation drivers.Rotation
	win      addrWindow
	frames   uint64
}

// NewFramebuffer returns a black framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set(int(x), int(y), RGBATo565(c))
}

func (f *Framebuffer) Display() error {
	f.mu.Lock()
	f.frames++
	f.mu.Unlock()
	return nil
}

func (f *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	x0 := clampInt(int(x), 0, f.width)
	y0 := clampInt(int(y), 0, f.height)
	x1 := clampInt(int(x)+int(width), 0, f.width)
	y1 := clampInt(int(y)+int(height), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := RGBATo565(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.set(px, py, pixel)
		}
	}
	return nil
}

func (f *Framebuffer) SetRotation(rotation drivers.Rotation) error {
	f.mu.Lock()
	f.rotation = rotation % 8
	f.mu.Unlock()
	return nil
}

func (f *Framebuffer) Rotation() drivers.Rotation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rotation
}

func (f *Framebuffer) SetWindow(x, y, w, h int16) {
	f.mu.Lock()
	f.win.set(x, y, w, h)
	f.mu.Unlock()
}

func (f *Framebuffer) PushPixels(pixels []uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.win.push(pixels, func(x, y, w, h int16, data []uint16) error {
		i := 0
		for py := int(y); py < int(y)+int(h); py++ {
			for px := int(x); px < int(x)+int(w); px++ {
				f.set(px, py, data[i])
				i++
			}
		}
		return nil
	})
}

// Pixel reads back the stored RGB565 value at x, y in the current rotation.
func (f *Framebuffer) Pixel(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	off, ok := f.offset(x, y)
	if !ok {
		return 0
	}
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// Frames reports how many times Display was called.
func (f *Framebuffer) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *Framebuffer) set(x, y int, pixel uint16) {
	off, ok := f.offset(x, y)
	if !ok {
		return
	}
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *Framebuffer) offset(x, y int) (int, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, false
	}
	if f.rotation >= drivers.Rotation0Mirror {
		y = f.height - 1 - y
	}
	off := y*f.stride + x*2
	if off < 0 || off+1 >= len(f.buf) {
		return 0, false
	}
	return off, true
}

// CopyRGBA converts the panel into dst, which must be at least as large.
func (f *Framebuffer) CopyRGBA(dst *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := dst.Bounds()
	w, h := min(f.width, b.Dx()), min(f.height, b.Dy())
	for y := 0; y < h; y++ {
		src := f.buf[y*f.stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			r, g, bl := RGB888From565(uint16(src[x*2]) | uint16(src[x*2+1])<<8)
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = bl
			row[x*4+3] = 0xFF
		}
	}
}

// WritePNG encodes the current panel contents.
func (f *Framebuffer) WritePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.CopyRGBA(img)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("framebuffer: png: %w", err)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
