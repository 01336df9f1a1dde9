package eosched

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func vectorsEqual(a, b []float64) bool {
	return floats.EqualApprox(a, b, 1e-6)
}

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
}

func TestDot(t *testing.T) {
	if !floats.EqualWithinAbs(dot([]float64{1, 0, 0}, []float64{0, 1, 0}), 0, 1e-12) {
		t.Fatal("expected orthogonal vectors to have a zero dot product")
	}
	if !floats.EqualWithinAbs(dot([]float64{1, 2, 3}, []float64{4, 5, 6}), 32, 1e-9) {
		t.Fatal("dot product mismatch")
	}
}

func TestUnit(t *testing.T) {
	u := unit([]float64{3, 4, 0})
	if !floats.EqualWithinAbs(norm(u), 1, 1e-12) {
		t.Fatal("unit vector should have unit norm")
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of zero vector should be zero")
	}
}

func TestDeg2radRoundTrip(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		rad := Deg2rad(deg)
		back := Rad2deg(rad)
		if !floats.EqualWithinAbs(back, deg, 1e-9) {
			t.Fatalf("Deg2rad/Rad2deg round trip failed for %f: got %f", deg, back)
		}
	}
}

func TestSign(t *testing.T) {
	if sign(-5) != -1 {
		t.Fatal("sign(-5) should be -1")
	}
	if sign(5) != 1 {
		t.Fatal("sign(5) should be 1")
	}
	if sign(0) != 1 {
		t.Fatal("sign(0) should default to 1")
	}
}

func TestColumnsToMatrix(t *testing.T) {
	m := columnsToMatrix([]float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1})
	if m.At(0, 0) != 1 || m.At(1, 1) != 1 || m.At(2, 2) != 1 {
		t.Fatal("expected identity matrix from orthonormal columns")
	}
	if math.Abs(m.At(0, 1)) > 1e-12 {
		t.Fatal("unexpected off-diagonal term")
	}
}
