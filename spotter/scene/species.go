package scene

import (
	"image/color"
	"strings"

	"planespotter/spotter/aircraft"
)

var (
	colorWhite     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBlack     = color.RGBA{A: 0xff}
	colorRed       = color.RGBA{R: 0xff, A: 0xff}
	colorGreen     = color.RGBA{G: 0xff, A: 0xff}
	colorNavy      = color.RGBA{B: 0x80, A: 0xff}
	colorSkyBlue   = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	colorLightGrey = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
)

// Kind is the label and colour shown for an aircraft category.
type Kind struct {
	Label string
	Color color.RGBA
}

var speciesKinds = map[aircraft.Species]Kind{
	aircraft.SpeciesSeaPlane:      {"Sea plane", colorSkyBlue},
	aircraft.SpeciesAmphibian:     {"Amphibian", colorGreen},
	aircraft.SpeciesHelicopter:    {"Helicopter", colorNavy},
	aircraft.SpeciesGyrocopter:    {"Gyrocopter", colorWhite},
	aircraft.SpeciesTiltwing:      {"Tiltwing", colorWhite},
	aircraft.SpeciesGroundVehicle: {"Ground Vehicle", colorWhite},
	aircraft.SpeciesTower:         {"Tower", colorWhite},
}

var engineKinds = map[aircraft.EngineType]Kind{
	aircraft.EnginePiston:    {"GA", colorRed},
	aircraft.EngineTurboprop: {"Turboprop", colorWhite},
	aircraft.EngineJet:       {"Jet", colorWhite},
	aircraft.EngineElectric:  {"Electric", colorWhite},
}

// Classify returns the category shown in the info panel.
func Classify(a aircraft.Aircraft) Kind {
	if a.Species != aircraft.SpeciesLandPlane {
		if k, ok := speciesKinds[a.Species]; ok {
			return k
		}
		return Kind{"N/A", colorWhite}
	}
	if k, ok := ClassifyRegistration(a.Registration); ok {
		return k
	}
	if k, ok := engineKinds[a.EngineType]; ok {
		return k
	}
	return Kind{"Land Plane", colorWhite}
}

// ClassifyRegistration recognises Dutch light-aviation marks:
// PH-dddd gliders, PH-dLL drones and PH-dLd ultralights.
func ClassifyRegistration(reg string) (Kind, bool) {
	reg = strings.ToUpper(strings.TrimSpace(reg))
	tail, ok := strings.CutPrefix(reg, "PH-")
	if !ok {
		return Kind{}, false
	}
	switch {
	case len(tail) == 4 && isDigit(tail[0]) && isDigit(tail[1]) && isDigit(tail[2]) && isDigit(tail[3]):
		return Kind{"Glider", colorWhite}, true
	case len(tail) == 3 && isDigit(tail[0]) && isLetter(tail[1]) && isLetter(tail[2]):
		return Kind{"Drone", colorWhite}, true
	case len(tail) == 3 && isDigit(tail[0]) && isLetter(tail[1]) && isDigit(tail[2]):
		return Kind{"Ultralight", colorLightGrey}, true
	}
	return Kind{}, false
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return b >= 'A' && b <= 'Z' }

// IsEmergency reports the hijack, radio failure and general emergency codes.
func IsEmergency(squawk string) bool {
	switch strings.TrimSpace(squawk) {
	case "7500", "7600", "7700":
		return true
	}
	return false
}
