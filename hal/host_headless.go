//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Snapshot, when set, receives a PNG of the last frame on exit.
	Snapshot string
}

// RunHeadless runs the renderer against the in-memory framebuffer without
// opening a window.
func RunHeadless(ctx context.Context, opts HostOptions, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	h := newHost(opts)
	step := newApp(h)
	if cfg.Snapshot != "" {
		defer func() {
			if err := h.saveSnapshot(cfg.Snapshot); err != nil {
				h.logger.WriteLineString(err.Error())
			}
		}()
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				h.logger.WriteLineString(fmt.Sprintf("headless: stopped after %d frames", h.fb.Frames()))
				return nil
			}
		}
	}
}
