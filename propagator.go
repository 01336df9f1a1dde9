package eosched

import (
	"time"

	"github.com/ChristopherRabotin/ode"
)

// EphemerisPoint is one sampled position/velocity state, used for the VTS
// trajectory export.
type EphemerisPoint struct {
	Time time.Time
	R, V []float64
}

// ephemerisPropagator implements the ode.Integrable interface expected by
// ode.NewRK4 (GetState/SetState/Func/Stop), grounded on mission.go's
// Mission, which drives an RK4 integration the same way. Unlike Mission's
// Gaussian-VOP-with-thrust state, this integrates plain two-body motion
// (R, V only): the scheduler's own access/slew computations use the
// analytic Orbit.StateAt, so the only thing the ephemeris mode needs to
// reproduce numerically is the trajectory for visualization, per
// spec.md's "ephemeris mode" requirement on the astrodynamics library.
type ephemerisPropagator struct {
	orbit     *Orbit
	start     time.Time
	stop      time.Time
	step      time.Duration
	current   time.Time
	r, v      []float64
	points    []EphemerisPoint
}

// GenerateEphemeris numerically propagates the orbit's two-body motion
// over [start, end] at the given step, via ode.NewRK4(...).Solve(),
// mirroring mission.go's Propagate/GetState/SetState/Func/Stop wiring.
func GenerateEphemeris(o *Orbit, start, end time.Time, step time.Duration) []EphemerisPoint {
	r0, v0 := o.StateAt(start)
	ep := &ephemerisPropagator{
		orbit: o, start: start, stop: end, step: step,
		current: start, r: r0, v: v0,
	}
	ep.points = append(ep.points, EphemerisPoint{Time: start, R: r0, V: v0})
	ode.NewRK4(0, step.Seconds(), ep).Solve()
	return ep.points
}

// GetState implements ode.Integrable.
func (ep *ephemerisPropagator) GetState() []float64 {
	return []float64{ep.r[0], ep.r[1], ep.r[2], ep.v[0], ep.v[1], ep.v[2]}
}

// SetState implements ode.Integrable.
func (ep *ephemerisPropagator) SetState(t float64, s []float64) {
	ep.r = []float64{s[0], s[1], s[2]}
	ep.v = []float64{s[3], s[4], s[5]}
	ep.current = ep.current.Add(ep.step)
	ep.points = append(ep.points, EphemerisPoint{Time: ep.current, R: ep.r, V: ep.v})
}

// Func implements ode.Integrable: plain two-body point-mass acceleration.
func (ep *ephemerisPropagator) Func(t float64, f []float64) []float64 {
	fDot := make([]float64, 6)
	R := []float64{f[0], f[1], f[2]}
	V := []float64{f[3], f[4], f[5]}
	r3 := norm(R) * norm(R) * norm(R)
	for i := 0; i < 3; i++ {
		fDot[i] = V[i]
		fDot[i+3] = -ep.orbit.Origin.μ * R[i] / r3
	}
	return fDot
}

// Stop implements ode.Integrable: halt once current has reached stop.
func (ep *ephemerisPropagator) Stop(t float64) bool {
	return !ep.current.Before(ep.stop)
}
