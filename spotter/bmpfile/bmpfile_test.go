package bmpfile

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestStride(t *testing.T) {
	cases := map[int]int{1: 4, 2: 8, 3: 12, 4: 12, 5: 16}
	for w, want := range cases {
		if got := Stride(w); got != want {
			t.Fatalf("Stride(%d) = %d; want %d", w, got, want)
		}
	}
}

func TestEncodeRoundTripsHeaderAndRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	img.Set(2, 1, color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff})

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != HeaderSize+2*12 {
		t.Fatalf("len = %d; want %d", buf.Len(), HeaderSize+24)
	}

	h, err := ReadHeader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if err := h.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if h.Width != 3 || h.Height != 2 || h.DataOffset != HeaderSize {
		t.Fatalf("header = %+v", h)
	}

	data := buf.Bytes()[HeaderSize:]
	// Bottom row (y=1) comes first; pixel (2,1) is BGR at offset 6.
	if data[6] != 0xcc || data[7] != 0xbb || data[8] != 0xaa {
		t.Fatalf("bottom row pixel = % x", data[6:9])
	}
	// Top row (y=0) second; pixel (0,0) at offset 12.
	if data[12] != 0x30 || data[13] != 0x20 || data[14] != 0x10 {
		t.Fatalf("top row pixel = % x", data[12:15])
	}
}

func TestValidateRejects(t *testing.T) {
	good := Header{Signature: Signature, Width: 1, Height: 1, Planes: 1, BitsPerPix: 24}
	if err := good.Validate(); err != nil {
		t.Fatalf("good header rejected: %v", err)
	}

	bad := []Header{
		{Signature: 0x1234, Width: 1, Height: 1, Planes: 1, BitsPerPix: 24},
		{Signature: Signature, Width: 1, Height: 1, Planes: 2, BitsPerPix: 24},
		{Signature: Signature, Width: 1, Height: 1, Planes: 1, BitsPerPix: 32},
		{Signature: Signature, Width: 1, Height: 1, Planes: 1, BitsPerPix: 24, Compression: 1},
		{Signature: Signature, Width: 1, Height: -1, Planes: 1, BitsPerPix: 24},
	}
	for i, h := range bad {
		if err := h.Validate(); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("case %d: err = %v; want ErrUnsupportedFormat", i, err)
		}
	}
}

func TestReadHeaderShort(t *testing.T) {
	if _, err := ReadHeader(bytes.NewReader([]byte("BM"))); err == nil {
		t.Fatal("expected error on truncated header")
	}
}
