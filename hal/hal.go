package hal

import (
	"errors"
	"image/color"
	"io"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Surface is the TFT as seen by the renderer.
//
// Pixels pushed with PushPixels are RGB565 values that fill the address window
// set by SetWindow left-to-right, top-to-bottom, in the current rotation's
// coordinate system.
//
// Mirrored rotations (Rotation0Mirror and up) are the base rotation flipped
// vertically: logical row y is physical row height-1-y on every backend.
type Surface interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetRotation(rotation drivers.Rotation) error
	Rotation() drivers.Rotation
	SetWindow(x, y, w, h int16)
	PushPixels(pixels []uint16) error
}

// File is a sequential, seekable read handle.
type File interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Storage opens named resources. Missing names must wrap fs.ErrNotExist.
type Storage interface {
	Open(name string) (File, error)
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Surface() Surface
	Touch() touch.Pointer
	Storage() Storage
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

// NopLogger discards everything.
var NopLogger Logger = nopLogger{}

type noTouch struct{}

func (noTouch) ReadTouchPoint() touch.Point { return touch.Point{} }

// NoTouch never reports a touch.
var NoTouch touch.Pointer = noTouch{}
