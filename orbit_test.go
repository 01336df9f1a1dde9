package eosched

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func testEpoch() time.Time {
	return time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)
}

func TestNewOrbitFromOEClampsSingularities(t *testing.T) {
	o := NewOrbitFromOE(testEpoch(), Earth.Radius+700, 0, 0, 10, 20, 30, Earth)
	if o.e < eccentricityε {
		t.Fatal("expected near-circular eccentricity to be clamped above eccentricityε")
	}
	if o.i < angleε {
		t.Fatal("expected near-equatorial inclination to be clamped above angleε")
	}
}

func TestPeriodMatchesKeplerThirdLaw(t *testing.T) {
	a := Earth.Radius + 700.0
	o := NewOrbitFromOE(testEpoch(), a, 1e-3, 98.6, 10, 0, 0, Earth)
	got := o.Period().Seconds()
	n := o.meanMotion()
	want := 2 * 3.141592653589793 / n
	if !floats.EqualWithinAbs(got, want, 1e-6) {
		t.Fatalf("period mismatch: got %f want %f", got, want)
	}
}

func TestStateAtPreservesOrbitRadiusForCircularOrbit(t *testing.T) {
	a := Earth.Radius + 700.0
	o := NewOrbitFromOE(testEpoch(), a, 1e-4, 51.6, 0, 0, 0, Earth)
	for _, dt := range []time.Duration{0, 10 * time.Minute, 45 * time.Minute, 2 * time.Hour} {
		R, V := o.StateAt(testEpoch().Add(dt))
		if !floats.EqualWithinAbs(norm(R), a, 1.0) {
			t.Fatalf("at dt=%s expected |R|~=%f, got %f", dt, a, norm(R))
		}
		if norm(V) <= 0 {
			t.Fatalf("at dt=%s expected nonzero velocity", dt)
		}
	}
}

func TestTrueAnomalyAdvancesOverOnePeriod(t *testing.T) {
	o := NewOrbitFromOE(testEpoch(), Earth.Radius+700, 1e-3, 60, 0, 0, 0, Earth)
	ν0 := o.trueAnomalyAt(o.Epoch)
	νAfter := o.trueAnomalyAt(o.Epoch.Add(o.Period()))
	if !floats.EqualWithinAbs(math.Remainder(νAfter-ν0, 2*math.Pi), 0, 1e-6) {
		t.Fatalf("expected true anomaly to return to its epoch value after one full period: got %f want %f", νAfter, ν0)
	}
}

func TestEqualsDetectsDifferentOrigin(t *testing.T) {
	o1 := NewOrbitFromOE(testEpoch(), Earth.Radius+700, 1e-3, 60, 0, 0, 0, Earth)
	o2 := NewOrbitFromOE(testEpoch(), Earth.Radius+700, 1e-3, 60, 0, 0, 0, CelestialObject{Name: "Mars"})
	if ok, err := o1.Equals(*o2); ok || err == nil {
		t.Fatal("expected orbits around different bodies to compare unequal")
	}
}

func TestRadii2ae(t *testing.T) {
	a, e := Radii2ae(Earth.Radius+800, Earth.Radius+400)
	if !floats.EqualWithinAbs(a, Earth.Radius+600, 1e-9) {
		t.Fatalf("expected a=%f got %f", Earth.Radius+600, a)
	}
	if e <= 0 {
		t.Fatal("expected a nonzero eccentricity for differing apses")
	}
}
