//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferWritePNG(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.SetPixel(1, 1, color.RGBA{R: 0xff, A: 0xff})

	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 0xff || g != 0 || b != 0 {
		t.Fatalf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "last.png")
	steps := 0
	newApp := func(h HAL) func() error {
		return func() error {
			steps++
			s := h.Surface()
			return s.FillRectangle(0, 0, 16, 8, color.RGBA{B: 0xff, A: 0xff})
		}
	}

	err := RunHeadless(context.Background(), HostOptions{Width: 16, Height: 8, AssetsDir: dir},
		newApp, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 3, Snapshot: out})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d; want 3", steps)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, _, b, _ := img.At(15, 7).RGBA(); b>>8 != 0xff {
		t.Fatal("snapshot does not show the last frame")
	}
}
