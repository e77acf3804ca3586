//go:build !tinygo

package hal

import (
	"fmt"
	"os"
)

// saveSnapshot writes the framebuffer to path as PNG and logs where it went.
func (h *hostHAL) saveSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := h.fb.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	h.logger.WriteLineString(fmt.Sprintf("snapshot: frame %d -> %s", h.fb.Frames(), path))
	return nil
}
