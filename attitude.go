package eosched

import (
	"time"
)

// Attitude is the satellite's orientation (quaternion, body->inertial) and
// angular velocity (rad/s, body frame) at one instant. Mirrors the shape of
// src/dynamics/attitude.go's Attitude{Attitude, Velocity, InertiaTensor},
// minus the inertia tensor, which this scheduler never needs: slew
// durations come from the agility model's bulk rate/acceleration limits,
// not from a rigid-body torque model.
type Attitude struct {
	Rotation        Quaternion
	AngularVelocity [3]float64
}

// AttitudeLaw is an opaque function from an instant to an Attitude, valid
// at any time in theory (spec.md §3).
type AttitudeLaw interface {
	AttitudeAt(t time.Time) Attitude
}

// NadirPointing points the sensor boresight (body -Z) at the Earth
// sub-satellite point, with the body +X axis aligned with the velocity
// direction. This is the satellite's default attitude law.
type NadirPointing struct {
	orbit *Orbit
}

// NewNadirPointing returns a NadirPointing law driven by the given orbit.
func NewNadirPointing(o *Orbit) *NadirPointing {
	return &NadirPointing{orbit: o}
}

// AttitudeAt implements AttitudeLaw.
func (n *NadirPointing) AttitudeAt(t time.Time) Attitude {
	R, V := n.orbit.StateAt(t)
	return lvlhAttitude(R, V, n.orbit.meanMotion())
}

// TargetGroundPointing points the sensor boresight (body -Z) at a fixed
// ground target for the duration it is in effect, with the body +X axis
// kept as close as possible to the orbital velocity direction. This
// reproduces the axis convention of the original Java TargetGroundPointing
// construction (Vector3D.MINUS_K as the target axis, Vector3D.PLUS_I as
// the reference axis) — see DESIGN.md's resolution of the corresponding
// Open Question.
type TargetGroundPointing struct {
	orbit  *Orbit
	earth  CelestialObject
	target GeodeticPoint
}

// NewTargetGroundPointing returns a TargetGroundPointing law aimed at target.
func NewTargetGroundPointing(o *Orbit, earth CelestialObject, target GeodeticPoint) *TargetGroundPointing {
	return &TargetGroundPointing{orbit: o, earth: earth, target: target}
}

// AttitudeAt implements AttitudeLaw.
func (g *TargetGroundPointing) AttitudeAt(t time.Time) Attitude {
	R, V := g.orbit.StateAt(t)
	θgst := gstAt(t, g.orbit.Epoch)
	targetECEF := GEO2ECEF(g.target.Altitude, g.target.Latitude, g.target.Longitude)
	targetECI := ECEF2ECI(targetECEF, θgst)

	boresight := unit(vecSub(targetECI, R))
	q := boresightAttitude(boresight, V)
	ω := g.orbit.angularVelocityAt(t)
	return Attitude{Rotation: q, AngularVelocity: ω}
}

// lvlhAttitude builds the nadir-pointing attitude: boresight (-Z) toward
// nadir, +X toward the velocity direction, right-handed triad completed by
// the orbit normal.
func lvlhAttitude(R, V []float64, n float64) Attitude {
	boresight := unit(scale(-1, R))
	q := boresightAttitude(boresight, V)
	h := cross(R, V)
	// Body rate in a circular-ish orbit is, to first order, the orbit's
	// mean motion about the orbit-normal axis.
	normal := unit(h)
	ω := [3]float64{normal[0] * n, normal[1] * n, normal[2] * n}
	return Attitude{Rotation: q, AngularVelocity: ω}
}

// boresightAttitude builds the quaternion that rotates body -Z onto the
// boresight direction and keeps body +X as close as possible to ref.
func boresightAttitude(boresight, ref []float64) Quaternion {
	zBody := scale(-1, boresight) // body -Z == boresight means +Z == -boresight
	xBody := unit(vecSub(ref, scale(dot(ref, zBody), zBody)))
	if norm(xBody) < 1e-9 {
		xBody = orthogonalTo(zBody)
	}
	yBody := cross(zBody, xBody)
	m := columnsToMatrix(xBody, yBody, zBody)
	return FromRotationMatrix(m)
}

func orthogonalTo(v []float64) []float64 {
	if swapXY := []float64{-v[1], v[0], 0}; norm(swapXY) > 1e-6 {
		return unit(swapXY)
	}
	return unit([]float64{0, -v[2], v[1]})
}

func vecSub(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale(s float64, v []float64) []float64 {
	return []float64{s * v[0], s * v[1], s * v[2]}
}
