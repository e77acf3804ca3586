//go:build !tinygo

package hal

import (
	"sync"

	"tinygo.org/x/drivers/touch"
)

// hostTouch emulates a resistive panel: screen positions are converted back
// into the raw range a real XPT2046 would report, so calibration code sees
// realistic samples.
type hostTouch struct {
	mu      sync.Mutex
	w, h    int
	minX    int
	minY    int
	maxX    int
	maxY    int
	pressed bool
	x, y    int
}

func newHostTouch(opts HostOptions) *hostTouch {
	t := &hostTouch{
		w:    opts.Width,
		h:    opts.Height,
		minX: opts.TouchMinX,
		minY: opts.TouchMinY,
		maxX: opts.TouchMaxX,
		maxY: opts.TouchMaxY,
	}
	if t.maxX <= t.minX || t.maxY <= t.minY {
		t.minX, t.minY, t.maxX, t.maxY = 0, 0, t.w, t.h
	}
	return t
}

func (t *hostTouch) press(x, y int) {
	t.mu.Lock()
	t.pressed = true
	t.x = clampInt(x, 0, t.w-1)
	t.y = clampInt(y, 0, t.h-1)
	t.mu.Unlock()
}

func (t *hostTouch) release() {
	t.mu.Lock()
	t.pressed = false
	t.mu.Unlock()
}

func (t *hostTouch) ReadTouchPoint() touch.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.pressed || t.w <= 0 || t.h <= 0 {
		return touch.Point{}
	}
	return touch.Point{
		X: t.minX + t.x*(t.maxX-t.minX)/t.w,
		Y: t.minY + t.y*(t.maxY-t.minY)/t.h,
		Z: 1000,
	}
}
