package eosched

import (
	"fmt"
	"math"
)

// GeodeticPoint is a point on the Earth's surface, in radians and km.
type GeodeticPoint struct {
	Latitude  float64 // radians
	Longitude float64 // radians
	Altitude  float64 // km above the reference ellipsoid
}

// Site is an observable ground target: a named point with an imaging
// score and an optional minimum observation duration. Grounded on
// station.go's Station{Name, R, LatΦ, Longθ, Altitude}, stripped of the
// ground-station-specific fields (V, Elevation mask, range noise) that
// have no role in an imaging target and adding the scheduling fields
// spec.md's Site needs (Score, MinDuration).
type Site struct {
	Name        string
	R           []float64 // ECEF position, km
	Point       GeodeticPoint
	Score       float64
	MinDuration float64 // seconds; the access planner never accepts less than the integration time
}

// NewSite returns a new Site. Latitude and longitude are in degrees.
func NewSite(name string, latDeg, lonDeg, altitude, score, minDuration float64) Site {
	p := GeodeticPoint{Latitude: Deg2rad(latDeg), Longitude: Deg2rad(lonDeg), Altitude: altitude}
	return Site{
		Name:        name,
		R:           GEO2ECEF(altitude, p.Latitude, p.Longitude),
		Point:       p,
		Score:       score,
		MinDuration: minDuration,
	}
}

// String implements the Stringer interface.
func (s Site) String() string {
	return fmt.Sprintf("%s (%.4f,%.4f) score=%.1f", s.Name, Rad2deg(s.Point.Latitude), Rad2deg(s.Point.Longitude), s.Score)
}

// ElevationAt returns the elevation angle, in radians, of the satellite
// position rECEF as seen from this site, via the SEZ transform in
// station.go's RangeElAz.
func (s Site) ElevationAt(rECEF []float64) float64 {
	ρECEF := vecSub(rECEF, s.R)
	ρ := norm(ρECEF)
	if ρ < 1e-9 {
		return math.Pi / 2
	}
	rSEZ := MxV33(R3(s.Point.Longitude), ρECEF)
	rSEZ = MxV33(R2(math.Pi/2-s.Point.Latitude), rSEZ)
	return math.Asin(rSEZ[2] / ρ)
}
