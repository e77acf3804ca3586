// Package aircraft holds the telemetry the renderer draws: one snapshot per
// aircraft per frame plus a short ring of past positions.
package aircraft

import "math"

// MaxHistory is the number of positions kept per aircraft.
const MaxHistory = 20

// Coordinates is a WGS84 position in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// CoordinatesPixel is a projected screen position.
type CoordinatesPixel struct {
	X int
	Y int
}

// Species is the aircraft category code reported by the feed.
type Species int

const (
	SpeciesUnknown Species = iota
	SpeciesLandPlane
	SpeciesSeaPlane
	SpeciesAmphibian
	SpeciesHelicopter
	SpeciesGyrocopter
	SpeciesTiltwing
	SpeciesGroundVehicle
	SpeciesTower
)

// EngineType is the engine category code reported by the feed.
type EngineType int

const (
	EngineUnknown EngineType = iota
	EnginePiston
	EngineTurboprop
	EngineJet
	EngineElectric
)

// Aircraft is one telemetry snapshot.
type Aircraft struct {
	Call         string
	Registration string
	AircraftType string
	Species      Species
	EngineType   EngineType
	Lat          float64
	Lon          float64
	Altitude     int     // feet
	Heading      float64 // degrees clockwise from north
	Speed        float64 // knots
	Distance     float64 // km from the observer
	FromCode     string
	FromShort    string
	ToCode       string
	ToShort      string
	Operator     string
	Squawk       string
}

// Position returns the aircraft's coordinates.
func (a Aircraft) Position() Coordinates {
	return Coordinates{Lat: a.Lat, Lon: a.Lon}
}

// AircraftPosition is one stored trail sample.
type AircraftPosition struct {
	Coordinates Coordinates
	Altitude    int
}

// AircraftHistory is a fixed ring of the most recent positions. Counter counts
// every Add and never wraps.
type AircraftHistory struct {
	Positions [MaxHistory]AircraftPosition
	Counter   int
}

// Add stores p, overwriting the oldest sample once the ring is full.
func (h *AircraftHistory) Add(p AircraftPosition) {
	h.Positions[h.Counter%MaxHistory] = p
	h.Counter++
}

// Len is the number of valid samples.
func (h *AircraftHistory) Len() int {
	return min(h.Counter, MaxHistory)
}

// Recent returns the k-th most recent sample; k=0 is the newest.
// It panics if k is not below Len.
func (h *AircraftHistory) Recent(k int) AircraftPosition {
	if k < 0 || k >= h.Len() {
		panic("aircraft: history index out of range")
	}
	return h.Positions[(h.Counter-1-k)%MaxHistory]
}

// NormalizeHeading maps any angle in degrees to [0, 360).
func NormalizeHeading(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle distance between a and b using the
// haversine formula.
func DistanceKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// Offset moves c by distKm along a bearing in degrees. The flat-earth
// approximation is fine for the few kilometres a simulated track covers.
func Offset(c Coordinates, bearing, distKm float64) Coordinates {
	rad := bearing * math.Pi / 180
	dLat := distKm * math.Cos(rad) / 111.32
	dLon := distKm * math.Sin(rad) / (111.32 * math.Cos(c.Lat*math.Pi/180))
	return Coordinates{Lat: c.Lat + dLat, Lon: c.Lon + dLon}
}
