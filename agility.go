package eosched

import "math"

// Agility holds the bounded-rate/bounded-acceleration parameters that
// govern how fast the satellite can reorient (spec.md §4.4). There is no
// teacher file modeling this directly — smd's thrusters.go/attitude.go
// model continuous torque dynamics, not a maximum-rate slew-duration
// profile — so this is built directly from spec.md's triangular/
// trapezoidal profile description rather than ported from a specific
// teacher function (see DESIGN.md).
type Agility struct {
	MaxAngularRate         float64 // rad/s
	MaxAngularAcceleration float64 // rad/s^2
	HalfAperture           float64 // rad, sensor field-of-regard half-angle
}

// SlewDuration returns the time required to rotate by angular separation
// θ (radians, θ >= 0) from rest to rest, following a bounded triangular
// or trapezoidal angular-rate profile: accelerate at MaxAngularAcceleration
// up to MaxAngularRate (or to the rate reached at the midpoint, if θ is
// too small to reach cruise speed), optionally cruise, then decelerate
// symmetrically. Monotone nondecreasing in θ; returns 0 at θ=0.
func (ag Agility) SlewDuration(θ float64) float64 {
	if θ <= 0 {
		return 0
	}
	// Angle covered while accelerating from 0 to MaxAngularRate.
	θAccel := (ag.MaxAngularRate * ag.MaxAngularRate) / (2 * ag.MaxAngularAcceleration)
	if θ <= 2*θAccel {
		// Triangular profile: never reaches cruise speed.
		return 2 * math.Sqrt(θ/ag.MaxAngularAcceleration)
	}
	// Trapezoidal profile: accelerate, cruise, decelerate.
	tAccel := ag.MaxAngularRate / ag.MaxAngularAcceleration
	θCruise := θ - 2*θAccel
	tCruise := θCruise / ag.MaxAngularRate
	return 2*tAccel + tCruise
}

// MaxSlewDuration returns the slew duration across twice the half-aperture
// from rest to rest: the worst-case reorientation the scheduler guards
// against (spec.md §4.4's S_max, used as the guard band in §4.3).
func (ag Agility) MaxSlewDuration() float64 {
	return ag.SlewDuration(2 * ag.HalfAperture)
}

// SlewDurationBetween returns the slew duration required to rotate from
// attitude a to attitude b: the geodesic angle between their rotations,
// passed through SlewDuration.
func (ag Agility) SlewDurationBetween(a, b Attitude) float64 {
	return ag.SlewDuration(GeodesicAngle(a.Rotation, b.Rotation))
}
