//go:build !tinygo && !cgo

package hal

import "errors"

var errNoWindow = errors.New("window: ebiten needs cgo; rebuild with CGO_ENABLED=1 or use -headless / -terminal")

func RunWindow(HostOptions, func(HAL) func() error) error { return errNoWindow }
