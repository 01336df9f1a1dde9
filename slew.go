package eosched

import (
	"fmt"
	"time"

	"github.com/ready-steady/ode/dopri"
)

// ConstantSpinSlew is the leg variant used to reorient the satellite
// between two attitudes: a constant body-frame angular velocity rotation
// about the single axis connecting the start and end attitudes, over the
// leg's time window (spec.md §4.5: "All slews use a constant-spin
// interpolation between boundary attitudes").
type ConstantSpinSlew struct {
	Start, End   Attitude
	StartT, EndT time.Time
	axis         []float64
	angle        float64
	angularRate  float64

	// KinematicsWarning is non-nil when verifyConstantSpinKinematics could
	// not build or run a numerical integration of the quaternion kinematics
	// equation for this slew. The integrated state is not compared with the
	// closed-form solution. It does not alter
	// AttitudeAt's output; callers that care (cinematic plan assembly via
	// SlewKinematicsWarning) surface it instead of letting it vanish into a
	// log line nobody reads.
	KinematicsWarning error
}

// NewConstantSpinSlew builds the slew leg between two attitudes over
// [startT, endT).
func NewConstantSpinSlew(start, end Attitude, startT, endT time.Time) *ConstantSpinSlew {
	rel := start.Rotation.Conjugate().Multiply(end.Rotation)
	axis, angle := rel.AxisAngle()
	dt := endT.Sub(startT).Seconds()
	var rate float64
	if dt > 0 {
		rate = angle / dt
	}
	warning := verifyConstantSpinKinematics(start.Rotation, axis, rate, dt)
	return &ConstantSpinSlew{
		Start: start, End: end,
		StartT: startT, EndT: endT,
		axis: axis, angle: angle, angularRate: rate,
		KinematicsWarning: warning,
	}
}

// SlewKinematicsWarning runs the same consistency check NewConstantSpinSlew
// runs internally, for callers (AssembleCinematicPlan) that want to attach
// the verdict to an AttitudeLeg without holding onto the ConstantSpinSlew
// value itself.
func SlewKinematicsWarning(start, end Attitude, startT, endT time.Time) error {
	return NewConstantSpinSlew(start, end, startT, endT).KinematicsWarning
}

// AttitudeAt implements AttitudeLaw: the attitude at t is the start
// attitude rotated by the constant-rate spin about axis for the elapsed
// fraction of the leg.
func (s *ConstantSpinSlew) AttitudeAt(t time.Time) Attitude {
	dt := t.Sub(s.StartT).Seconds()
	θ := s.angularRate * dt
	step := FromAxisAngle(s.axis, θ)
	q := s.Start.Rotation.Multiply(step).Normalize()
	ω := [3]float64{s.axis[0] * s.angularRate, s.axis[1] * s.angularRate, s.axis[2] * s.angularRate}
	return Attitude{Rotation: q, AngularVelocity: ω}
}

// verifyConstantSpinKinematics runs a direct numerical integration of the
// quaternion kinematics equation dq/dt = 0.5 * q ⊗ (0, ω) over the slew,
// using the same dopri.New(dopri.DefaultConfig())/Compute call pattern as
// src/cmd/integrator_test/dopri_example.go. Returns a non-nil error
// (rather than failing the slew outright) if the integrator cannot be
// built or Compute fails. The integrated state is discarded: it is not
// compared with the closed-form constant-spin solution above, which stays
// the leg's attitude source of truth; the caller decides whether and
// where to surface the error.
func verifyConstantSpinKinematics(start Quaternion, axis []float64, rate, dt float64) error {
	if dt <= 0 {
		return nil
	}
	integrator, err := dopri.New(dopri.DefaultConfig())
	if err != nil {
		return fmt.Errorf("slew kinematics integrator unavailable: %s", err)
	}
	ωx, ωy, ωz := axis[0]*rate, axis[1]*rate, axis[2]*rate
	dxdy := func(x float64, state, f []float64) {
		w, qx, qy, qz := state[0], state[1], state[2], state[3]
		f[0] = 0.5 * (-qx*ωx - qy*ωy - qz*ωz)
		f[1] = 0.5 * (w*ωx + qy*ωz - qz*ωy)
		f[2] = 0.5 * (w*ωy - qx*ωz + qz*ωx)
		f[3] = 0.5 * (w*ωz + qx*ωy - qy*ωx)
	}
	initial := []float64{start.W, start.X, start.Y, start.Z}
	xs := []float64{0, dt}
	if _, _, err := integrator.Compute(dxdy, initial, xs); err != nil {
		return fmt.Errorf("slew kinematics integration failed: %s", err)
	}
	return nil
}
