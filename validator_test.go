package eosched

import (
	"testing"
	"time"
)

func TestValidateCinematicPlanValidSlew(t *testing.T) {
	ag := testAgility()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	a := Attitude{Rotation: IdentityQuaternion}
	b := Attitude{Rotation: FromAxisAngle([]float64{0, 0, 1}, Deg2rad(1))}
	theory := ag.SlewDurationBetween(a, b)
	legs := []AttitudeLeg{
		{Kind: LegSlew, Name: "Slew_1", Start: start, End: start.Add(time.Duration(theory*float64(time.Second)) + time.Hour),
			StartAttitude: a, EndAttitude: b},
	}
	result := ValidateCinematicPlan(legs, ag)
	if !result.Valid {
		t.Fatalf("expected a generously long slew leg to validate, violations: %v", result.Violations)
	}
}

func TestValidateCinematicPlanTooFastSlewIsInvalid(t *testing.T) {
	ag := testAgility()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	a := Attitude{Rotation: IdentityQuaternion}
	b := Attitude{Rotation: FromAxisAngle([]float64{0, 0, 1}, Deg2rad(60))}
	legs := []AttitudeLeg{
		{Kind: LegSlew, Name: "Slew_TooFast", Start: start, End: start.Add(time.Millisecond),
			StartAttitude: a, EndAttitude: b},
	}
	result := ValidateCinematicPlan(legs, ag)
	if result.Valid {
		t.Fatal("expected a 1ms slew across 60 degrees to be flagged invalid")
	}
	if len(result.Violations) != 1 || result.Violations[0].LegName != "Slew_TooFast" {
		t.Fatalf("expected exactly one violation naming Slew_TooFast, got %v", result.Violations)
	}
}

func TestValidateCinematicPlanIgnoresNonSlewLegs(t *testing.T) {
	ag := testAgility()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	legs := []AttitudeLeg{
		{Kind: LegNadir, Name: "Nadir_Law", Start: start, End: start.Add(time.Millisecond)},
	}
	result := ValidateCinematicPlan(legs, ag)
	if !result.Valid {
		t.Fatal("nadir legs carry no slew-duration constraint and should never invalidate a plan")
	}
}

func TestComputeFinalScoreSumsSiteScores(t *testing.T) {
	plan := ObservationPlan{Legs: map[string]AttitudeLeg{
		"A": {Site: Site{Name: "A", Score: 10}},
		"B": {Site: Site{Name: "B", Score: 25}},
	}}
	if got := ComputeFinalScore(plan); got != 35 {
		t.Fatalf("expected total score 35, got %f", got)
	}
}
