//go:build !tinygo

// Command mkbmp converts PNG, JPEG, GIF and WebP images into the 24-bit
// bottom-up BMP files the blitter streams from storage.
//
//	mkbmp -in plane.png -out A319.bmp -w 84
//	mkbmp -src art/ -out assets/silhouettes -w 84 -h 42
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"planespotter/spotter/bmpfile"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var inputExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

type options struct {
	width, height int
	smooth        bool
}

func main() {
	var in, src, out string
	var opts options
	flag.StringVar(&in, "in", "", "Single input image.")
	flag.StringVar(&src, "src", "", "Directory of input images, converted recursively.")
	flag.StringVar(&out, "out", "", "Output BMP file (with -in) or directory (with -src).")
	flag.IntVar(&opts.width, "w", 0, "Output width in pixels (0 = keep, or follow -h).")
	flag.IntVar(&opts.height, "h", 0, "Output height in pixels (0 = keep, or follow -w).")
	flag.BoolVar(&opts.smooth, "smooth", false, "Scale with Catmull-Rom instead of nearest neighbour.")
	flag.Parse()

	if (in == "") == (src == "") {
		fmt.Fprintln(os.Stderr, "error: exactly one of -in or -src is required")
		os.Exit(2)
	}
	if out == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if opts.width < 0 || opts.height < 0 {
		fmt.Fprintln(os.Stderr, "error:", errBadSize)
		os.Exit(2)
	}

	var err error
	if in != "" {
		err = convertFile(in, out, opts)
	} else {
		err = convertDir(src, out, opts)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func convertDir(srcDir, outDir string, opts options) error {
	srcDir = filepath.Clean(srcDir)
	st, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("stat src %q: %w", srcDir, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("src %q is not a directory", srcDir)
	}

	var files []string
	walkErr := filepath.WalkDir(srcDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if inputExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk src %q: %w", srcDir, walkErr)
	}
	if len(files) == 0 {
		return fmt.Errorf("no images under %q", srcDir)
	}
	sort.Strings(files)

	for _, path := range files {
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".bmp")
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("mkdir %q: %w", filepath.Dir(dst), err)
		}
		if err := convertFile(path, dst, opts); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(inPath, outPath string, opts options) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %q: %w", inPath, err)
	}
	img, format, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("decode %q: %w", inPath, err)
	}

	img = resize(img, opts)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := bmpfile.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %q: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %q: %w", outPath, err)
	}

	b := img.Bounds()
	fmt.Printf("%s (%s) -> %s %dx%d\n", inPath, format, outPath, b.Dx(), b.Dy())
	return nil
}

var errBadSize = errors.New("output size must not be negative")

// targetSize fills in a zero dimension from the source aspect ratio.
func targetSize(srcW, srcH int, opts options) (int, int, error) {
	w, h := opts.width, opts.height
	switch {
	case w < 0 || h < 0:
		return 0, 0, errBadSize
	case w == 0 && h == 0:
		return srcW, srcH, nil
	case w == 0:
		w = max(1, srcW*h/srcH)
	case h == 0:
		h = max(1, srcH*w/srcW)
	}
	return w, h, nil
}

func resize(img image.Image, opts options) image.Image {
	b := img.Bounds()
	w, h, err := targetSize(b.Dx(), b.Dy(), opts)
	if err != nil || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	var scaler draw.Scaler = draw.NearestNeighbor
	if opts.smooth {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
