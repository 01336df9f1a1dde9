package eosched

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e1                          // 20 km

	keplerMaxIterations = 50
	keplerTolerance     = 1e-12
)

// Orbit defines a satellite orbit via its classical orbital elements, plus
// the epoch at which those elements are osculating. Grounded on orbit.go's
// Orbit{a, e, i, Ω, ω, ν, Origin}, with an Epoch field added: the teacher's
// Orbit is a momentary state handed to a numerical propagator, whereas this
// scheduler needs to evaluate R/V analytically at arbitrary mission times
// (sampled every detector check interval), which requires knowing how far
// past the epoch a given instant is.
type Orbit struct {
	a, e, i, Ω, ω, ν0 float64
	Epoch             time.Time
	Origin            CelestialObject
}

// NewOrbitFromOE creates an orbit from the classical orbital elements at
// the given epoch. Angles must be in degrees, matching orbit.go's
// NewOrbitFromOE convention.
func NewOrbitFromOE(epoch time.Time, a, e, i, Ω, ω, ν float64, c CelestialObject) *Orbit {
	if e < eccentricityε {
		e = eccentricityε
	}
	iRad := Deg2rad(i)
	if iRad < angleε {
		iRad = angleε
	}
	return &Orbit{a, e, iRad, Deg2rad(Ω), Deg2rad(ω), Deg2rad(ν), epoch, c}
}

// meanMotion returns the orbit's mean motion, in radians per second.
func (o *Orbit) meanMotion() float64 {
	return math.Sqrt(o.Origin.μ / math.Pow(o.a, 3))
}

// Period returns the orbital period.
func (o *Orbit) Period() time.Duration {
	seconds := 2 * math.Pi / o.meanMotion()
	return time.Duration(seconds * float64(time.Second))
}

// trueAnomalyAt solves Kepler's equation (by Newton-Raphson, since the
// exact call surface of github.com/soniakeys/meeus/elliptic's Elements
// type could not be grounded from any call site in the retrieved pack —
// see DESIGN.md) for the true anomaly at time t, propagating the orbit's
// epoch true anomaly ν0 forward under two-body, unperturbed motion.
func (o *Orbit) trueAnomalyAt(t time.Time) float64 {
	dt := t.Sub(o.Epoch).Seconds()
	n := o.meanMotion()

	sinE0, cosE0 := sinCosEccentricAnomaly(o.e, o.ν0)
	E0 := math.Atan2(sinE0, cosE0)
	M0 := E0 - o.e*sinE0
	M := math.Mod(M0+n*dt, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}

	E := M
	if o.e > eccentricityε {
		E = keplerSolve(M, o.e)
	}
	sinE, cosE := math.Sincos(E)
	sinν := math.Sqrt(1-o.e*o.e) * sinE / (1 - o.e*cosE)
	cosν := (cosE - o.e) / (1 - o.e*cosE)
	ν := math.Atan2(sinν, cosν)
	if ν < 0 {
		ν += 2 * math.Pi
	}
	return ν
}

// keplerSolve solves Kepler's equation M = E - e*sin(E) for E via
// Newton-Raphson, starting from M as the initial guess.
func keplerSolve(M, e float64) float64 {
	E := M
	for i := 0; i < keplerMaxIterations; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		δ := f / fp
		E -= δ
		if math.Abs(δ) < keplerTolerance {
			break
		}
	}
	return E
}

func sinCosEccentricAnomaly(e, ν float64) (sinE, cosE float64) {
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	sinE = math.Sqrt(1-e*e) * sinν / denom
	cosE = (e + cosν) / denom
	return
}

// SemiParameter returns the orbit's semi-latus rectum.
func (o *Orbit) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// StateAt returns the ECI position (km) and velocity (km/s) of the orbit
// at instant t, propagated analytically from the epoch osculating
// elements. Grounded on orbit.go's RV(), generalized from "state at the
// cached true anomaly" to "state at an arbitrary time."
func (o *Orbit) StateAt(t time.Time) (R, V []float64) {
	ν := o.trueAnomalyAt(t)
	p := o.SemiParameter()
	sinν, cosν := math.Sincos(ν)

	r := make([]float64, 3)
	r[0] = p * cosν / (1 + o.e*cosν)
	r[1] = p * sinν / (1 + o.e*cosν)
	r[2] = 0
	R = PQW2ECI(o.i, o.ω, o.Ω, r)

	v := make([]float64, 3)
	v[0] = -math.Sqrt(o.Origin.μ/p) * sinν
	v[1] = math.Sqrt(o.Origin.μ/p) * (o.e + cosν)
	v[2] = 0
	V = PQW2ECI(o.i, o.ω, o.Ω, v)
	return
}

// angularVelocityAt returns the body angular velocity needed to keep the
// boresight fixed on a point on the rotating Earth while tracking the
// orbital motion: to first order, the orbit's mean motion about the
// instantaneous orbit-normal axis (the same approximation lvlhAttitude
// uses for nadir pointing).
func (o *Orbit) angularVelocityAt(t time.Time) [3]float64 {
	R, V := o.StateAt(t)
	normal := unit(cross(R, V))
	n := o.meanMotion()
	return [3]float64{normal[0] * n, normal[1] * n, normal[2] * n}
}

// Elements returns the six classical orbital elements (radians, except a
// which is in km).
func (o *Orbit) Elements() (a, e, i, Ω, ω, ν float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.ν0
}

// String implements the Stringer interface.
func (o Orbit) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f @ %s",
		o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.ν0), o.Epoch.Format(time.RFC3339))
}

// Equals returns whether two orbits describe the same osculating state,
// within the same tolerances orbit.go's Equals used.
func (o Orbit) Equals(o1 Orbit) (bool, error) {
	if o.Origin.Name != o1.Origin.Name {
		return false, errors.New("different origin")
	}
	if !floats.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(o.i, o1.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !floats.EqualWithinAbs(o.Ω, o1.Ω, angleε) {
		return false, errors.New("RAAN invalid")
	}
	return true, nil
}

// Radii2ae returns the semi major axis and the eccentricity from the
// apoapsis and periapsis radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
