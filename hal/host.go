//go:build !tinygo

package hal

import (
	"os"
	"path/filepath"
	"strings"

	"tinygo.org/x/drivers/touch"
)

// HostOptions configures the host HAL.
type HostOptions struct {
	Width     int
	Height    int
	AssetsDir string
	LogLevel  string
	LogFile   string

	// Raw range reported by the emulated resistive panel.
	TouchMinX, TouchMinY int
	TouchMaxX, TouchMaxY int
}

type hostHAL struct {
	logger  *hostLogger
	fb      *Framebuffer
	touch   *hostTouch
	storage dirStorage
}

// New returns a host HAL implementation.
func New(opts HostOptions) HAL {
	return newHost(opts)
}

func newHost(opts HostOptions) *hostHAL {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 480, 320
	}
	if opts.AssetsDir == "" {
		opts.AssetsDir = "."
	}
	return &hostHAL{
		logger:  newHostLogger(opts.LogLevel, opts.LogFile),
		fb:      NewFramebuffer(opts.Width, opts.Height),
		touch:   newHostTouch(opts),
		storage: dirStorage{root: opts.AssetsDir},
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Surface() Surface     { return h.fb }
func (h *hostHAL) Touch() touch.Pointer { return h.touch }
func (h *hostHAL) Storage() Storage     { return h.storage }

type dirStorage struct {
	root string
}

func (s dirStorage) Open(name string) (File, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(name, "/"))
	f, err := os.Open(filepath.Join(s.root, rel))
	if err != nil {
		return nil, err
	}
	return f, nil
}
