package eosched

import (
	"testing"

	"github.com/gonum/floats"
)

func testAgility() Agility {
	return Agility{MaxAngularRate: Deg2rad(2.0), MaxAngularAcceleration: Deg2rad(0.5), HalfAperture: Deg2rad(30)}
}

func TestSlewDurationZeroAngle(t *testing.T) {
	ag := testAgility()
	if ag.SlewDuration(0) != 0 {
		t.Fatal("expected zero duration for zero angle")
	}
}

func TestSlewDurationMonotone(t *testing.T) {
	ag := testAgility()
	prev := 0.0
	for _, deg := range []float64{1, 5, 10, 30, 60} {
		d := ag.SlewDuration(Deg2rad(deg))
		if d < prev {
			t.Fatalf("slew duration should be nondecreasing in angle: at %f deg got %f, previous was %f", deg, d, prev)
		}
		prev = d
	}
}

func TestSlewDurationTriangularVsTrapezoidal(t *testing.T) {
	ag := testAgility()
	θAccel := (ag.MaxAngularRate * ag.MaxAngularRate) / (2 * ag.MaxAngularAcceleration)
	small := ag.SlewDuration(θAccel)
	large := ag.SlewDuration(4 * θAccel)
	if large <= 2*small {
		t.Fatal("expected the trapezoidal regime to take proportionally longer than a pure triangular extrapolation once cruise speed is reached")
	}
}

func TestMaxSlewDurationMatchesTwiceHalfAperture(t *testing.T) {
	ag := testAgility()
	want := ag.SlewDuration(2 * ag.HalfAperture)
	if !floats.EqualWithinAbs(ag.MaxSlewDuration(), want, 1e-12) {
		t.Fatal("MaxSlewDuration should equal SlewDuration(2*HalfAperture)")
	}
}

func TestSlewDurationBetweenMatchesGeodesicAngle(t *testing.T) {
	ag := testAgility()
	a := Attitude{Rotation: IdentityQuaternion}
	b := Attitude{Rotation: FromAxisAngle([]float64{0, 0, 1}, Deg2rad(10))}
	want := ag.SlewDuration(GeodesicAngle(a.Rotation, b.Rotation))
	if !floats.EqualWithinAbs(ag.SlewDurationBetween(a, b), want, 1e-12) {
		t.Fatal("SlewDurationBetween should match SlewDuration(GeodesicAngle(...))")
	}
}
