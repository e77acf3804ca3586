// Package blit streams stored images onto a hal.Surface through fixed-size
// buffers, so no image is ever held in memory whole.
package blit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"planespotter/hal"
	"planespotter/spotter/bmpfile"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// BufferPixels is the number of pixels converted per push.
const BufferPixels = 20

// Names that were not found are not looked up again for missingTTL.
const (
	missingEntries = 32
	missingTTL     = 30 * time.Second
)

var (
	ErrNotFound          = errors.New("blit: file not found")
	ErrUnsupportedFormat = bmpfile.ErrUnsupportedFormat
)

// Blitter owns the read and output buffers shared by every draw call. It is
// not safe for concurrent use.
type Blitter struct {
	surface hal.Surface
	fs      hal.Storage
	log     hal.Logger
	decoder TileDecoder
	missing *expirable.LRU[string, struct{}]

	raw [3 * BufferPixels]byte
	out [BufferPixels]uint16
}

// New returns a Blitter. decoder may be nil when JPEG support is not needed.
func New(s hal.Surface, storage hal.Storage, log hal.Logger, decoder TileDecoder) *Blitter {
	if log == nil {
		log = hal.NopLogger
	}
	return &Blitter{
		surface: s,
		fs:      storage,
		log:     log,
		decoder: decoder,
		missing: expirable.NewLRU[string, struct{}](missingEntries, nil, missingTTL),
	}
}

type format uint8

const (
	formatUnknown format = iota
	formatBMP
	formatJPEG
)

func detectFormat(head []byte, name string) format {
	if len(head) >= 2 && head[0] == 'B' && head[1] == 'M' {
		return formatBMP
	}
	if len(head) >= 2 && head[0] == 0xFF && head[1] == 0xD8 {
		return formatJPEG
	}
	switch strings.ToLower(pathExt(name)) {
	case ".bmp":
		return formatBMP
	case ".jpg", ".jpeg":
		return formatJPEG
	default:
		return formatUnknown
	}
}

func pathExt(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return ""
		}
		if p[i] == '.' {
			return p[i:]
		}
	}
	return ""
}

// Draw renders name at (x, y), picking the decoder from the file contents.
// Failures are logged and otherwise ignored; the screen keeps whatever was
// drawn before.
func (b *Blitter) Draw(name string, x, y int16) {
	if err := b.draw(name, x, y); err != nil {
		b.log.WriteLineString(err.Error())
	}
}

func (b *Blitter) draw(name string, x, y int16) error {
	f, err := b.open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	var head [2]byte
	n, _ := io.ReadFull(f, head[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("blit: seek %s: %w", name, err)
	}

	switch detectFormat(head[:n], name) {
	case formatBMP:
		return b.bmp(f, name, x, y)
	case formatJPEG:
		return b.jpeg(f, name, x, y)
	default:
		return fmt.Errorf("blit: %s: %w", name, ErrUnsupportedFormat)
	}
}

// DrawBMP streams a 24-bit bottom-up BMP with its top-left corner at (x, y).
// The parts of the image past the right or bottom edge are not drawn.
func (b *Blitter) DrawBMP(name string, x, y int16) error {
	w, h := b.surface.Size()
	if x >= w || y >= h {
		return nil
	}
	f, err := b.open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.bmp(f, name, x, y)
}

func (b *Blitter) open(name string) (hal.File, error) {
	if b.missing.Contains(name) {
		return nil, fmt.Errorf("blit: open %s: %w", name, ErrNotFound)
	}
	b.log.WriteLineString(name)
	f, err := b.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.missing.Add(name, struct{}{})
			b.log.WriteLineString(" File not found")
			return nil, fmt.Errorf("blit: open %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("blit: open %s: %w", name, err)
	}
	return f, nil
}

func (b *Blitter) bmp(f hal.File, name string, x, y int16) error {
	sw, sh := b.surface.Size()
	if x < 0 || y < 0 || x >= sw || y >= sh {
		return nil
	}

	// Row order is flipped by drawing in the mirrored rotation, so file rows
	// can be streamed in the order they are stored.
	rotation := b.surface.Rotation()
	if err := b.surface.SetRotation((rotation + 4) % 8); err != nil {
		return fmt.Errorf("blit: rotate: %w", err)
	}
	defer b.surface.SetRotation(rotation)

	hdr, err := bmpfile.ReadHeader(f)
	if err != nil {
		return fmt.Errorf("blit: %s: %w", name, err)
	}
	if err := hdr.Validate(); err != nil {
		b.log.WriteLineString("BMP format not recognised")
		return fmt.Errorf("blit: %s: %w", name, err)
	}

	stride := int64(hdr.Stride())
	imgW, imgH := int(hdr.Width), int(hdr.Height)
	visW := min(imgW, int(sw-x))
	visH := min(imgH, int(sh-y))

	top := sh - y - int16(visH)
	b.surface.SetWindow(x, top, int16(visW), int16(visH))

	// Bottom rows that fall off screen are the first rows in the file.
	pos := int64(hdr.DataOffset) + int64(imgH-visH)*stride
	end := int64(hdr.DataOffset) + int64(imgH)*stride
	cur := int64(-1)
	rowBytes := imgW * 3
	n := 0

	for ; pos < end; pos += stride {
		if cur != pos {
			if _, err := f.Seek(pos, io.SeekStart); err != nil {
				return fmt.Errorf("blit: seek %s: %w", name, err)
			}
		}
		col := 0
		for left := rowBytes; left > 0; {
			chunk := b.raw[:min(left, len(b.raw))]
			if _, err := io.ReadFull(f, chunk); err != nil {
				return fmt.Errorf("blit: read %s: %w", name, err)
			}
			left -= len(chunk)
			for i := 0; i+2 < len(chunk); i += 3 {
				if col < visW {
					bl, g, r := uint16(chunk[i]), uint16(chunk[i+1]), uint16(chunk[i+2])
					b.out[n] = (bl >> 3) | (g&0xFC)<<3 | (r&0xF8)<<8
					n++
					if n == len(b.out) {
						if err := b.surface.PushPixels(b.out[:n]); err != nil {
							return fmt.Errorf("blit: push: %w", err)
						}
						n = 0
					}
				}
				col++
			}
		}
		cur = pos + int64(rowBytes)
	}
	if n > 0 {
		if err := b.surface.PushPixels(b.out[:n]); err != nil {
			return fmt.Errorf("blit: push: %w", err)
		}
	}
	return nil
}
