package eosched

import "time"

// LegKind distinguishes the three kinds of attitude leg a cinematic plan
// is built from (spec.md §3).
type LegKind int

const (
	// LegNadir is a leg flown under the default nadir-pointing law.
	LegNadir LegKind = iota
	// LegObservation is a leg flown under a target-ground-pointing law
	// for the duration of an observation.
	LegObservation
	// LegSlew is a constant-spin reorientation between two attitudes.
	LegSlew
)

// AttitudeLeg is one interval of the cinematic plan: a time window, the
// attitude law flown during it, and bookkeeping needed by the assembler
// and validator. Grounded on spec.md §3's AttitudeLeg type and Orekit's
// AttitudeLawLeg, which CompleteMission.java builds one of per scheduled
// observation and per nadir/slew segment.
type AttitudeLeg struct {
	Kind  LegKind
	Name  string
	Start time.Time
	End   time.Time
	Law   AttitudeLaw

	// Site is set for LegObservation legs.
	Site Site

	// StartAttitude/EndAttitude are set for LegSlew legs: the boundary
	// attitudes the slew interpolates between.
	StartAttitude Attitude
	EndAttitude   Attitude

	// SlewWarning is set for LegSlew legs when the numerical integration of
	// the quaternion kinematics equation over the slew could not be built or
	// run. The integrated state is not compared with the closed-form
	// constant-spin solution. See SlewKinematicsWarning.
	SlewWarning error
}

// Duration returns the leg's wall-clock length.
func (l AttitudeLeg) Duration() time.Duration {
	return l.End.Sub(l.Start)
}

// AttitudeAt evaluates the leg's attitude at instant t, which must lie
// within [Start, End].
func (l AttitudeLeg) AttitudeAt(t time.Time) Attitude {
	switch l.Kind {
	case LegSlew:
		return NewConstantSpinSlew(l.StartAttitude, l.EndAttitude, l.Start, l.End).AttitudeAt(t)
	default:
		return l.Law.AttitudeAt(t)
	}
}
