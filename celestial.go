package eosched

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
)

// AU is one astronomical unit in kilometers.
const AU = 1.49597870700e8

// vsop87EarthIndex is the zero-based VSOP87 planet index for Earth, per
// planetposition.LoadPlanetPath's convention (vsopPosition-1 in
// celestial.go's HelioOrbit, where Earth is vsopPosition 3).
const vsop87EarthIndex = 2

// CelestialObject describes the handful of constants this scheduler needs
// about a body: its size (for Earth-masking in the visibility detector)
// and gravitational parameter (for circular-orbit mean motion). Trimmed
// down from celestial.go's CelestialObject, which additionally carries
// J2-J4 and heliocentric-orbit bookkeeping this mission has no use for
// (Non-goals: no perturbation modeling, no interplanetary trajectories).
type CelestialObject struct {
	Name   string
	Radius float64 // km
	μ      float64 // km^3/s^2
}

// GM returns the gravitational parameter of the body.
func (c CelestialObject) GM() float64 {
	return c.μ
}

// Earth is the only body this scheduler orbits.
var Earth = CelestialObject{"Earth", 6378.1363, 3.98600433e5}

// earthVSOP87 is the lazily-loaded VSOP87 Earth ephemeris used to compute
// the Sun's geocentric direction for the sun-incidence and non-glare
// detectors, grounded on celestial.go's HelioOrbit VSOP87 branch.
var earthVSOP87 *planetposition.V87Planet

// vsop87DataDir is the directory containing the VSOP87 data files bundled
// with github.com/soniakeys/meeus. Overridable for deployments that vendor
// the data elsewhere.
var vsop87DataDir = "."

// SetVSOP87Dir overrides the directory searched for VSOP87 ephemeris data.
func SetVSOP87Dir(dir string) {
	vsop87DataDir = dir
	earthVSOP87 = nil
}

func loadEarthVSOP87() (*planetposition.V87Planet, error) {
	if earthVSOP87 != nil {
		return earthVSOP87, nil
	}
	pp, err := planetposition.LoadPlanetPath(vsop87EarthIndex, vsop87DataDir)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 Earth ephemeris from %s: %s", vsop87DataDir, err)
	}
	earthVSOP87 = pp
	return pp, nil
}

// SunPositionECI returns the Sun's geocentric position, in the equatorial
// (ECI, mean-of-date J2000) frame, in kilometers, at the given instant.
// Grounded on HelioOrbit's VSOP87 usage in celestial.go, specialized to
// the Earth-Sun case: the geocentric Sun vector is the negative of
// Earth's heliocentric position, converted from ecliptic to equatorial
// coordinates by the mean J2000 obliquity.
func SunPositionECI(t time.Time) ([]float64, error) {
	pp, err := loadEarthVSOP87()
	if err != nil {
		return nil, &PropagationFailure{Reason: err.Error()}
	}
	l, b, r := pp.Position2000(julian.TimeToJD(t))
	// Heliocentric Earth longitude -> geocentric Sun longitude is a
	// half-turn opposition; latitude flips sign.
	lSun := l.Rad() + math.Pi
	bSun := -b.Rad()
	sLat, cLat := math.Sincos(bSun)
	sLon, cLon := math.Sincos(lSun)
	rKm := r * AU

	xEcl := rKm * cLat * cLon
	yEcl := rKm * cLat * sLon
	zEcl := rKm * sLat

	const ε = 23.4392911 * deg2rad // mean J2000 obliquity
	sε, cε := math.Sincos(ε)
	return []float64{
		xEcl,
		yEcl*cε - zEcl*sε,
		yEcl*sε + zEcl*cε,
	}, nil
}
