package eosched

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// Quaternion is a unit attitude quaternion, scalar-first, rotating vectors
// from the body frame into the inertial frame.
//
// This plays the role that src/dynamics/attitude.go's MRP plays in the
// upstream library: a minimal orientation representation with the algebra
// needed to drive an Attitude. Quaternions are used here instead of MRPs
// because the spec defines Attitude in terms of a quaternion.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion is the null rotation.
var IdentityQuaternion = Quaternion{W: 1}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit norm.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return IdentityQuaternion
	}
	return Quaternion{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Conjugate returns the conjugate (and, since q is unit, the inverse) of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Multiply returns q*r (applies r first, then q).
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Dot returns the inner product of the two quaternions.
func (q Quaternion) Dot(r Quaternion) float64 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// GeodesicAngle returns the rotation angle, in radians, between the two
// attitudes represented by q and r. It is symmetric and zero when q == r
// (up to the double cover of SO(3) by unit quaternions).
func GeodesicAngle(q, r Quaternion) float64 {
	d := math.Abs(q.Dot(r))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// RotateVector rotates the 3-vector v from the body frame to the inertial
// frame using q.
func (q Quaternion) RotateVector(v []float64) []float64 {
	p := Quaternion{0, v[0], v[1], v[2]}
	r := q.Multiply(p).Multiply(q.Conjugate())
	return []float64{r.X, r.Y, r.Z}
}

// FromAxisAngle builds the quaternion rotating by angle θ (radians) about
// the given (not necessarily unit) axis.
func FromAxisAngle(axis []float64, θ float64) Quaternion {
	u := unit(axis)
	s, c := math.Sincos(θ / 2)
	return Quaternion{c, u[0] * s, u[1] * s, u[2] * s}
}

// AxisAngle decomposes q into a rotation axis and angle (radians).
func (q Quaternion) AxisAngle() (axis []float64, θ float64) {
	qn := q.Normalize()
	θ = 2 * math.Acos(clamp(qn.W, -1, 1))
	s := math.Sqrt(1 - qn.W*qn.W)
	if floats.EqualWithinAbs(s, 0, 1e-9) {
		return []float64{1, 0, 0}, θ
	}
	return []float64{qn.X / s, qn.Y / s, qn.Z / s}, θ
}

// FromRotationMatrix converts a 3x3 proper rotation matrix (body->inertial)
// into the equivalent unit quaternion, using Shepperd's method.
func FromRotationMatrix(m *mat64.Dense) Quaternion {
	r11, r12, r13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	r21, r22, r23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	r31, r32, r33 := m.At(2, 0), m.At(2, 1), m.At(2, 2)
	tr := r11 + r22 + r33

	var w, x, y, z float64
	switch {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1)
		w = 0.25 / s
		x = (r32 - r23) * s
		y = (r13 - r31) * s
		z = (r21 - r12) * s
	case r11 > r22 && r11 > r33:
		s := 2 * math.Sqrt(1+r11-r22-r33)
		w = (r32 - r23) / s
		x = 0.25 * s
		y = (r12 + r21) / s
		z = (r13 + r31) / s
	case r22 > r33:
		s := 2 * math.Sqrt(1+r22-r11-r33)
		w = (r13 - r31) / s
		x = (r12 + r21) / s
		y = 0.25 * s
		z = (r23 + r32) / s
	default:
		s := 2 * math.Sqrt(1+r33-r11-r22)
		w = (r21 - r12) / s
		x = (r13 + r31) / s
		y = (r23 + r32) / s
		z = 0.25 * s
	}
	return Quaternion{w, x, y, z}.Normalize()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
