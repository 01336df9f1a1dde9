package eosched

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestConstantSpinSlewEndpoints(t *testing.T) {
	start := Attitude{Rotation: IdentityQuaternion}
	end := Attitude{Rotation: FromAxisAngle([]float64{0, 0, 1}, Deg2rad(30))}
	startT := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	endT := startT.Add(10 * time.Second)

	slew := NewConstantSpinSlew(start, end, startT, endT)

	gotStart := slew.AttitudeAt(startT)
	if GeodesicAngle(gotStart.Rotation, start.Rotation) > 1e-9 {
		t.Fatalf("expected the slew to begin at the start attitude, got angle %f", GeodesicAngle(gotStart.Rotation, start.Rotation))
	}
	gotEnd := slew.AttitudeAt(endT)
	if GeodesicAngle(gotEnd.Rotation, end.Rotation) > 1e-6 {
		t.Fatalf("expected the slew to finish at the end attitude, got angle %f", GeodesicAngle(gotEnd.Rotation, end.Rotation))
	}
}

func TestConstantSpinSlewIsMonotoneInAngle(t *testing.T) {
	start := Attitude{Rotation: IdentityQuaternion}
	end := Attitude{Rotation: FromAxisAngle([]float64{1, 0, 0}, Deg2rad(90))}
	startT := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	endT := startT.Add(20 * time.Second)
	slew := NewConstantSpinSlew(start, end, startT, endT)

	prevAngle := -1.0
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		sample := startT.Add(time.Duration(frac * float64(endT.Sub(startT))))
		angle := GeodesicAngle(start.Rotation, slew.AttitudeAt(sample).Rotation)
		if angle < prevAngle-1e-9 {
			t.Fatalf("slew angle from start must be nondecreasing: at frac=%f got %f after %f", frac, angle, prevAngle)
		}
		prevAngle = angle
	}
}

func TestConstantSpinSlewZeroDurationHoldsStart(t *testing.T) {
	start := Attitude{Rotation: IdentityQuaternion}
	end := Attitude{Rotation: FromAxisAngle([]float64{0, 1, 0}, Deg2rad(45))}
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	slew := NewConstantSpinSlew(start, end, at, at)
	got := slew.AttitudeAt(at)
	if !floats.EqualWithinAbs(got.Rotation.W, start.Rotation.W, 1e-9) {
		t.Fatal("expected a zero-duration slew to hold the start attitude")
	}
}

func TestConstantSpinSlewZeroDurationSkipsKinematicsCheck(t *testing.T) {
	start := Attitude{Rotation: IdentityQuaternion}
	end := Attitude{Rotation: FromAxisAngle([]float64{0, 1, 0}, Deg2rad(45))}
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	slew := NewConstantSpinSlew(start, end, at, at)
	if slew.KinematicsWarning != nil {
		t.Fatalf("expected no kinematics warning for a degenerate zero-duration slew, got %v", slew.KinematicsWarning)
	}
}

func TestSlewKinematicsWarningMatchesConstantSpinSlew(t *testing.T) {
	start := Attitude{Rotation: IdentityQuaternion}
	end := Attitude{Rotation: FromAxisAngle([]float64{1, 0, 0}, Deg2rad(90))}
	startT := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	endT := startT.Add(20 * time.Second)

	direct := NewConstantSpinSlew(start, end, startT, endT).KinematicsWarning
	viaHelper := SlewKinematicsWarning(start, end, startT, endT)
	if (direct == nil) != (viaHelper == nil) {
		t.Fatalf("expected SlewKinematicsWarning to match NewConstantSpinSlew's own verdict, got %v vs %v", direct, viaHelper)
	}
}
