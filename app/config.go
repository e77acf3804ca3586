package app

import (
	"image/color"
	"time"

	"planespotter/spotter/aircraft"
	"planespotter/spotter/menu"
)

// Config holds everything the spotter needs that is not part of the HAL.
// TinyGo builds use DefaultConfig as is; host builds overlay a config file.
type Config struct {
	MapHeight int
	Center    aircraft.Coordinates
	Zoom      int

	Touch menu.Calibration

	// SilhouetteDir is where <AircraftType>.bmp images live on storage.
	SilhouetteDir      string
	HighlightEmergency bool
	MapColor           color.RGBA

	// SimAircraft is the number of simulated aircraft, capped at the fleet size.
	SimAircraft int
	// HistoryEvery is the number of frames between trail samples.
	HistoryEvery int
	// FrameInterval paces Run on targets without a host runner.
	FrameInterval time.Duration
}

// DefaultConfig is tuned for a 480x320 panel centred on Schiphol.
func DefaultConfig() Config {
	return Config{
		MapHeight:          250,
		Center:             aircraft.Coordinates{Lat: 52.3086, Lon: 4.7639},
		Zoom:               10,
		Touch:              menu.Calibration{MinX: 250, MinY: 250, MaxX: 3800, MaxY: 3800},
		SilhouetteDir:      "/silhouettes",
		HighlightEmergency: true,
		MapColor:           color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff},
		SimAircraft:        6,
		HistoryEvery:       10,
		FrameInterval:      100 * time.Millisecond,
	}
}
