//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch"
	"tinygo.org/x/drivers/xpt2046"
)

type tinyGoHAL struct {
	logger  *uartLogger
	surface *tftSurface
	touch   *xpt2046.Device
	storage Storage
}

// New returns the HAL for an RP2040 wired to an ILI9341 TFT with an XPT2046
// touch controller and an SD card slot.
//
// TFT:   SPI0 SCK GP18 / SDO GP19 / SDI GP16, CS GP17, DC GP20, RST GP21.
// Touch: CLK GP2, CS GP3, DIN GP4, DOUT GP5, IRQ GP6 (bit-banged).
// SD:    SPI1 SCK GP10 / SDO GP11 / SDI GP12, CS GP13.
// UART:  UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
		Frequency: 40_000_000,
	})
	tft := ili9341.NewSPI(machine.SPI0, machine.GP20, machine.GP17, machine.GP21)
	tft.Configure(ili9341.Config{Rotation: drivers.Rotation90})

	ts := xpt2046.New(machine.GP2, machine.GP3, machine.GP4, machine.GP5, machine.GP6)
	ts.Configure(&xpt2046.Config{Precision: 10})

	storage, err := newSDStorage()
	if err != nil {
		logger.WriteLineString("sd: " + err.Error())
		storage = nil
	}

	h := &tinyGoHAL{
		logger:  logger,
		surface: &tftSurface{Device: tft, rotation: drivers.Rotation90},
		touch:   &ts,
	}
	if storage != nil {
		h.storage = storage
	} else {
		h.storage = noStorage{}
	}
	return h
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Surface() Surface     { return h.surface }
func (h *tinyGoHAL) Touch() touch.Pointer { return h.touch }
func (h *tinyGoHAL) Storage() Storage     { return h.storage }

// tftSurface adds address-window streaming on top of the ili9341 driver.
//
// The driver's mirrored rotations flip columns, so they are handled here
// instead: the panel stays in the base rotation and rows are flipped in
// software.
type tftSurface struct {
	*ili9341.Device
	rotation drivers.Rotation
	win      addrWindow
}

func (s *tftSurface) mirrored() bool { return s.rotation >= drivers.Rotation0Mirror }

// flipY maps a band of h rows starting at y to its first physical row.
func (s *tftSurface) flipY(y, h int16) int16 {
	if !s.mirrored() {
		return y
	}
	_, sh := s.Device.Size()
	return sh - y - h
}

func (s *tftSurface) SetRotation(rotation drivers.Rotation) error {
	rotation %= 8
	base := rotation % 4
	if s.Device.Rotation() != base {
		if err := s.Device.SetRotation(base); err != nil {
			return err
		}
	}
	s.rotation = rotation
	return nil
}

func (s *tftSurface) Rotation() drivers.Rotation { return s.rotation }

func (s *tftSurface) SetPixel(x, y int16, c color.RGBA) {
	s.Device.SetPixel(x, s.flipY(y, 1), c)
}

func (s *tftSurface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return s.Device.FillRectangle(x, s.flipY(y, height), width, height, c)
}

func (s *tftSurface) SetWindow(x, y, w, h int16) { s.win.set(x, y, w, h) }

func (s *tftSurface) PushPixels(pixels []uint16) error {
	return s.win.push(pixels, func(x, y, w, h int16, data []uint16) error {
		if !s.mirrored() {
			return s.Device.DrawRGBBitmap(x, y, data, w, h)
		}
		_, sh := s.Device.Size()
		return flipRows(x, y, w, h, sh, data, s.Device.DrawRGBBitmap)
	})
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
