// Package bmpfile reads and writes the one BMP layout the display path
// understands: 24 bits per pixel, uncompressed, rows stored bottom-up and
// padded to 4 bytes.
package bmpfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
)

const (
	// Signature is "BM" read as a little-endian uint16.
	Signature uint16 = 0x4D42

	// HeaderSize is the file header plus a BITMAPINFOHEADER.
	HeaderSize = 14 + 40

	// prefix covers every field up to and including compression.
	prefix = 34
)

var ErrUnsupportedFormat = errors.New("bmp: format not recognised")

// Header holds the fields needed to stream pixel rows.
type Header struct {
	Signature   uint16
	DataOffset  uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitsPerPix  uint16
	Compression uint32
}

// ReadHeader reads the header from the start of r. Only the leading fields are
// consumed; callers seek to DataOffset before reading pixels.
func ReadHeader(r io.Reader) (Header, error) {
	var b [prefix]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Header{}, fmt.Errorf("bmp: read header: %w", err)
	}
	le := binary.LittleEndian
	return Header{
		Signature:   le.Uint16(b[0:2]),
		DataOffset:  le.Uint32(b[10:14]),
		Width:       int32(le.Uint32(b[18:22])),
		Height:      int32(le.Uint32(b[22:26])),
		Planes:      le.Uint16(b[26:28]),
		BitsPerPix:  le.Uint16(b[28:30]),
		Compression: le.Uint32(b[30:34]),
	}, nil
}

// Validate reports ErrUnsupportedFormat unless h describes a bottom-up,
// single-plane, uncompressed 24-bit image.
func (h Header) Validate() error {
	switch {
	case h.Signature != Signature:
		return fmt.Errorf("%w: signature %#04x", ErrUnsupportedFormat, h.Signature)
	case h.Planes != 1:
		return fmt.Errorf("%w: planes %d", ErrUnsupportedFormat, h.Planes)
	case h.BitsPerPix != 24:
		return fmt.Errorf("%w: depth %d", ErrUnsupportedFormat, h.BitsPerPix)
	case h.Compression != 0:
		return fmt.Errorf("%w: compression %d", ErrUnsupportedFormat, h.Compression)
	case h.Width <= 0 || h.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrUnsupportedFormat, h.Width, h.Height)
	}
	return nil
}

// Stride is the padded length of one row in bytes.
func (h Header) Stride() int { return Stride(int(h.Width)) }

// Stride returns the 4-byte aligned row length for a 24-bit image w pixels wide.
func Stride(w int) int {
	return (w*3 + 3) &^ 3
}

// Encode writes img as a 24-bit bottom-up BMP.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmp: encode: empty image %dx%d", width, height)
	}
	stride := Stride(width)
	dataSize := stride * height

	var hdr [HeaderSize]byte
	le := binary.LittleEndian
	le.PutUint16(hdr[0:2], Signature)
	le.PutUint32(hdr[2:6], uint32(HeaderSize+dataSize))
	le.PutUint32(hdr[10:14], HeaderSize)
	le.PutUint32(hdr[14:18], 40)
	le.PutUint32(hdr[18:22], uint32(width))
	le.PutUint32(hdr[22:26], uint32(height))
	le.PutUint16(hdr[26:28], 1)
	le.PutUint16(hdr[28:30], 24)
	le.PutUint32(hdr[34:38], uint32(dataSize))
	le.PutUint32(hdr[38:42], 2835)
	le.PutUint32(hdr[42:46], 2835)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("bmp: encode: %w", err)
	}

	row := make([]byte, stride)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := 0; x < width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, y).RGBA()
			row[x*3+0] = uint8(bl >> 8)
			row[x*3+1] = uint8(g >> 8)
			row[x*3+2] = uint8(r >> 8)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("bmp: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmp: encode: %w", err)
	}
	return nil
}
