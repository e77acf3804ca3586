package jpegtiles

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"
)

func encodeJPEG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestTilesCoverImage(t *testing.T) {
	d := New()
	info, err := d.Start(bytes.NewReader(encodeJPEG(t, 40, 20, color.White)))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if info.Width != 40 || info.Height != 20 || info.MCUWidth != MCUSize {
		t.Fatalf("info = %+v", info)
	}

	pixels := 0
	tiles := 0
	for {
		tile, ok := d.Next()
		if !ok {
			break
		}
		if len(tile.Pixels) != tile.Width*tile.Height {
			t.Fatalf("tile %+v has %d pixels", tile, len(tile.Pixels))
		}
		pixels += len(tile.Pixels)
		tiles++
	}
	if err := d.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if tiles != 3*2 {
		t.Fatalf("tiles = %d; want 6", tiles)
	}
	if pixels != 40*20 {
		t.Fatalf("pixels = %d; want 800", pixels)
	}
}

func TestTilePixelsAreRGB565(t *testing.T) {
	d := New()
	if _, err := d.Start(bytes.NewReader(encodeJPEG(t, 16, 16, color.White))); err != nil {
		t.Fatalf("Start: %v", err)
	}
	tile, ok := d.Next()
	if !ok {
		t.Fatal("no tile")
	}
	// Quality 100 white may decode a step below 0xff in a channel.
	if p := tile.Pixels[0]; p < 0xf7de {
		t.Fatalf("pixel = %#04x; want near white", p)
	}
}

func TestAbortStopsWithoutError(t *testing.T) {
	d := New()
	if _, err := d.Start(bytes.NewReader(encodeJPEG(t, 64, 64, color.Black))); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, ok := d.Next(); !ok {
		t.Fatal("no first tile")
	}
	d.Abort()
	if _, ok := d.Next(); ok {
		t.Fatal("Next after Abort returned a tile")
	}
	if d.Err() != nil {
		t.Fatalf("Err after Abort = %v", d.Err())
	}
}

func TestStartRejectsGarbage(t *testing.T) {
	d := New()
	if _, err := d.Start(strings.NewReader("not a jpeg")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, ok := d.Next(); ok {
		t.Fatal("Next returned a tile after a failed Start")
	}
	if d.Err() == nil {
		t.Fatal("Err should report the decode failure")
	}
}

func TestStartRejectsOversizedImage(t *testing.T) {
	d := New()
	_, err := d.Start(bytes.NewReader(encodeJPEG(t, 481, 320, color.White)))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v; want ErrTooLarge", err)
	}
	if _, ok := d.Next(); ok {
		t.Fatal("Next returned a tile for a rejected image")
	}

	if _, err := d.Start(bytes.NewReader(encodeJPEG(t, 480, 320, color.White))); err != nil {
		t.Fatalf("full-screen image rejected: %v", err)
	}
}
