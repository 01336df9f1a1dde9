package eosched

import (
	"testing"
	"time"
)

func testSatellite() *Satellite {
	epoch := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	orbit := NewOrbitFromOE(epoch, Earth.Radius+700, 1e-3, 98.0, 0, 0, 0, Earth)
	agility := Agility{MaxAngularRate: Deg2rad(2.0), MaxAngularAcceleration: Deg2rad(0.5), HalfAperture: Deg2rad(30)}
	return NewSatellite(orbit, agility)
}

func TestComputeObservationPlanSingleSite(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	site := NewSite("Paris", 48.8, 2.3, 0, 10, 0)
	plans := []AccessPlan{
		{Site: site, Timeline: Timeline{Phenomena: []Phenomenon{
			{Start: start, End: start.Add(time.Hour)},
		}}},
	}
	obs, infeasible := ComputeObservationPlan(plans, testSatellite(), 10*time.Second)
	if len(obs.Order) != 1 {
		t.Fatalf("expected 1 scheduled observation, got %d", len(obs.Order))
	}
	if len(infeasible) != 0 {
		t.Fatalf("expected no infeasible diagnostics, got %v", infeasible)
	}
	leg := obs.Legs["Paris"]
	if leg.Duration() != 10*time.Second {
		t.Fatalf("expected a 10s observation leg, got %s", leg.Duration())
	}
}

func TestComputeObservationPlanPrefersHigherScore(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	window := Timeline{Phenomena: []Phenomenon{{Start: start, End: start.Add(time.Minute)}}}
	low := NewSite("Low", 10, 10, 0, 1, 0)
	high := NewSite("High", 20, 20, 0, 100, 0)
	plans := []AccessPlan{
		{Site: low, Timeline: window},
		{Site: high, Timeline: window},
	}
	obs, _ := ComputeObservationPlan(plans, testSatellite(), 10*time.Second)
	if obs.Order[0] != "High" {
		t.Fatalf("expected the higher-score site to be scheduled first, got order %v", obs.Order)
	}
}

func TestComputeObservationPlanInfeasibleTightWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	site := NewSite("Tiny", 0, 0, 0, 10, 0)
	plans := []AccessPlan{
		{Site: site, Timeline: Timeline{Phenomena: []Phenomenon{
			{Start: start, End: start.Add(time.Second)},
		}}},
	}
	obs, infeasible := ComputeObservationPlan(plans, testSatellite(), 10*time.Second)
	if len(obs.Order) != 0 {
		t.Fatalf("expected no scheduled observation for a window shorter than the integration time, got %d", len(obs.Order))
	}
	if len(infeasible) != 1 || infeasible[0].Site != "Tiny" {
		t.Fatalf("expected a recorded SchedulingInfeasible diagnostic for Tiny, got %v", infeasible)
	}
}

func TestOverlapsWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	r := reservation{Start: start.Add(10 * time.Minute), End: start.Add(20 * time.Minute)}
	if !overlapsWindow(r, start, start.Add(time.Hour)) {
		t.Fatal("expected a reservation inside the window to overlap")
	}
	if overlapsWindow(r, start.Add(time.Hour), start.Add(2*time.Hour)) {
		t.Fatal("expected a reservation outside the window not to overlap")
	}
}

func TestFindSlotGapBetweenReservations(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	overlapping := []reservation{
		{Start: start, End: start.Add(time.Minute)},
		{Start: start.Add(20 * time.Minute), End: start.Add(21 * time.Minute)},
	}
	ok, at := findSlot(overlapping, start, start.Add(30*time.Minute), 5*time.Second, time.Second)
	if !ok {
		t.Fatal("expected a slot to be found between the two reservations")
	}
	if at.Before(overlapping[0].End) {
		t.Fatal("expected the slot to start no earlier than the first reservation's end")
	}
}

func TestFindSlotNoGap(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	overlapping := []reservation{
		{Start: start, End: start.Add(time.Minute)},
	}
	ok, _ := findSlot(overlapping, start.Add(-10*time.Millisecond), start.Add(time.Minute+10*time.Millisecond), 10*time.Second, time.Second)
	if ok {
		t.Fatal("expected no slot to be found when the access window barely exceeds the single reservation")
	}
}
