package app

import (
	"math"

	"planespotter/spotter/aircraft"
)

// Simulated seconds per frame.
const simSeconds = 1.0

const knotsToKmPerSecond = 1.852 / 3600

// Tracks further out than this are wrapped to the other side of the observer.
const wrapKm = 40

type motion uint8

const (
	orbit motion = iota
	straight
)

// flight is one simulated aircraft.
type flight struct {
	Aircraft aircraft.Aircraft
	History  aircraft.AircraftHistory

	motion   motion
	radiusKm float64
	bearing  float64 // from the observer, for orbits
	climb    int     // feet per frame
	floor    int
	ceiling  int
}

type seed struct {
	a        aircraft.Aircraft
	motion   motion
	radiusKm float64
	bearing  float64
	climb    int
}

// fleet is the fixed set of simulated aircraft. Positions are filled in
// relative to the observer.
var fleet = []seed{
	{
		a: aircraft.Aircraft{
			Call: "KLM1234", Registration: "PH-BXA", AircraftType: "B738",
			Species: aircraft.SpeciesLandPlane, EngineType: aircraft.EngineJet,
			Altitude: 12000, Speed: 280,
			FromCode: "AMS", FromShort: "Amsterdam", ToCode: "LHR", ToShort: "London",
			Operator: "KLM", Squawk: "1000",
		},
		motion: orbit, radiusKm: 15, bearing: 30, climb: 20,
	},
	{
		a: aircraft.Aircraft{
			Call: "TRA6012", Registration: "PH-HZD", AircraftType: "B738",
			Species: aircraft.SpeciesLandPlane, EngineType: aircraft.EngineJet,
			Altitude: 24000, Speed: 420, Heading: 45,
			FromCode: "RTM", FromShort: "Rotterdam", ToCode: "AGP", ToShort: "Malaga",
			Operator: "Transavia", Squawk: "2312",
		},
		motion: straight, radiusKm: 20, bearing: 225, climb: 40,
	},
	{
		a: aircraft.Aircraft{
			Call: "PH1234", Registration: "PH-1234", AircraftType: "AS21",
			Species: aircraft.SpeciesLandPlane, EngineType: aircraft.EngineUnknown,
			Altitude: 3000, Speed: 50, Squawk: "7000",
		},
		motion: orbit, radiusKm: 5, bearing: 200,
	},
	{
		a: aircraft.Aircraft{
			Call: "LIFELN1", Registration: "PH-ULP", AircraftType: "EC35",
			Species: aircraft.SpeciesHelicopter, EngineType: aircraft.EngineTurboprop,
			Altitude: 1500, Speed: 120, Heading: 200,
			Operator: "ANWB MAA", Squawk: "0020",
		},
		motion: straight, radiusKm: 10, bearing: 20,
	},
	{
		a: aircraft.Aircraft{
			Call: "PH1A2", Registration: "PH-1A2", AircraftType: "C42",
			Species: aircraft.SpeciesLandPlane, EngineType: aircraft.EnginePiston,
			Altitude: 1200, Speed: 70, Squawk: "7700",
		},
		motion: orbit, radiusKm: 8, bearing: 300,
	},
	{
		a: aircraft.Aircraft{
			Call: "DLH9X", Registration: "D-AIBA", AircraftType: "A319",
			Species: aircraft.SpeciesLandPlane, EngineType: aircraft.EngineJet,
			Altitude: 38000, Speed: 450, Heading: 120,
			FromCode: "FRA", FromShort: "Frankfurt", ToCode: "AMS", ToShort: "Amsterdam",
			Operator: "Lufthansa", Squawk: "4453",
		},
		motion: straight, radiusKm: 30, bearing: 300, climb: -30,
	},
}

// Traffic is a deterministic stand-in for a live feed.
type Traffic struct {
	observer aircraft.Coordinates
	flights  []*flight
	every    int
	frame    int
}

// NewTraffic places up to n aircraft from the fleet around observer. A trail
// sample is recorded every `every` frames.
func NewTraffic(observer aircraft.Coordinates, n, every int) *Traffic {
	if every <= 0 {
		every = 1
	}
	n = max(0, min(n, len(fleet)))
	t := &Traffic{observer: observer, every: every}
	for _, s := range fleet[:n] {
		f := &flight{
			Aircraft: s.a,
			motion:   s.motion,
			radiusKm: s.radiusKm,
			bearing:  s.bearing,
			climb:    s.climb,
			floor:    1000,
			ceiling:  40000,
		}
		pos := aircraft.Offset(observer, s.bearing, s.radiusKm)
		f.Aircraft.Lat, f.Aircraft.Lon = pos.Lat, pos.Lon
		if s.motion == orbit {
			f.Aircraft.Heading = aircraft.NormalizeHeading(s.bearing + 90)
		}
		f.Aircraft.Distance = aircraft.DistanceKm(observer, pos)
		t.flights = append(t.flights, f)
	}
	return t
}

// Step advances every aircraft by one frame.
func (t *Traffic) Step() {
	t.frame++
	sample := t.frame%t.every == 0
	for _, f := range t.flights {
		if sample {
			f.History.Add(aircraft.AircraftPosition{
				Coordinates: f.Aircraft.Position(),
				Altitude:    f.Aircraft.Altitude,
			})
		}
		t.move(f)
	}
}

func (t *Traffic) move(f *flight) {
	stepKm := f.Aircraft.Speed * knotsToKmPerSecond * simSeconds
	a := &f.Aircraft

	switch f.motion {
	case orbit:
		// Arc length stepKm on a circle of radiusKm, clockwise.
		f.bearing = aircraft.NormalizeHeading(f.bearing + stepKm/f.radiusKm*180/math.Pi)
		pos := aircraft.Offset(t.observer, f.bearing, f.radiusKm)
		a.Lat, a.Lon = pos.Lat, pos.Lon
		a.Heading = aircraft.NormalizeHeading(f.bearing + 90)
	case straight:
		pos := aircraft.Offset(a.Position(), a.Heading, stepKm)
		if aircraft.DistanceKm(t.observer, pos) > wrapKm {
			pos = aircraft.Offset(t.observer, a.Heading+180, wrapKm-5)
			f.History = aircraft.AircraftHistory{}
		}
		a.Lat, a.Lon = pos.Lat, pos.Lon
	}

	a.Altitude += f.climb
	if a.Altitude > f.ceiling || a.Altitude < f.floor {
		f.climb = -f.climb
		a.Altitude = max(f.floor, min(f.ceiling, a.Altitude))
	}
	a.Distance = aircraft.DistanceKm(t.observer, a.Position())
}

// SetObserver moves the reference point used for distances.
func (t *Traffic) SetObserver(c aircraft.Coordinates) {
	t.observer = c
	for _, f := range t.flights {
		f.Aircraft.Distance = aircraft.DistanceKm(c, f.Aircraft.Position())
	}
}

// Len is the number of simulated aircraft.
func (t *Traffic) Len() int { return len(t.flights) }

// Flight returns aircraft i and its trail.
func (t *Traffic) Flight(i int) (aircraft.Aircraft, *aircraft.AircraftHistory) {
	f := t.flights[i]
	return f.Aircraft, &f.History
}

// Nearest returns the index of the closest aircraft, or -1 with no traffic.
func (t *Traffic) Nearest() int {
	best := -1
	for i, f := range t.flights {
		if best < 0 || f.Aircraft.Distance < t.flights[best].Aircraft.Distance {
			best = i
		}
	}
	return best
}
