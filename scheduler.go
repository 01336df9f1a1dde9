package eosched

import (
	"sort"
	"time"
)

// reservation is a committed observation-plan slot:
// [Start, Start+integrationTime+guard) where guard = maxSlewDuration. The guard band beyond
// the integration window is the conservative separation spec.md §4.3
// reserves so that downstream cinematic assembly never needs a pairwise
// slew-duration re-check. Grounded directly on
// progmission.Reservation/CompleteMission.computeObservationPlan.
type reservation struct {
	Start time.Time
	End   time.Time // Start + integrationTime + guard
	Site  Site
}

// ObservationPlan maps each scheduled site to its observation leg.
type ObservationPlan struct {
	Legs map[string]AttitudeLeg
	// Order lists the scheduled site names in ascending start time, for
	// callers (the cinematic assembler) that need a stable sequence.
	Order []string
}

// ComputeObservationPlan greedily places at most one observation window
// per site, processing sites by descending score and, within a site's
// access phenomena, searching each window for a gap (before every
// overlapping reservation, between two of them, or after all of them)
// wide enough for the integration time plus guard bands on both sides.
// Sites that have at least one access phenomenon but cannot be fit
// anywhere are reported back as SchedulingInfeasible diagnostics rather
// than dropped silently. Ported line-for-line in structure from
// CompleteMission.computeObservationPlan; see DESIGN.md.
func ComputeObservationPlan(plans []AccessPlan, sat *Satellite, integrationTime time.Duration) (ObservationPlan, []*SchedulingInfeasible) {
	guard := time.Duration(sat.MaxSlewDuration() * float64(time.Second))
	slotSpan := integrationTime + guard

	sorted := make([]AccessPlan, len(plans))
	copy(sorted, plans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Site.Score > sorted[j].Site.Score })

	var reservations []reservation
	var infeasible []*SchedulingInfeasible

	for _, plan := range sorted {
		target := plan.Site
		observed := false
		placed := false
		for _, access := range plan.Timeline.Phenomena {
			if observed {
				break
			}
			if access.Duration() < integrationTime {
				continue
			}
			accessStart, accessEnd := access.Start, access.End

			var overlapping []reservation
			for _, r := range reservations {
				if r.Site.Name == target.Name {
					observed = true
					break
				}
				if overlapsWindow(r, accessStart, accessEnd) {
					overlapping = append(overlapping, r)
				}
			}
			if observed {
				break
			}
			sort.Slice(overlapping, func(i, j int) bool { return overlapping[i].Start.Before(overlapping[j].Start) })

			ok, at := findSlot(overlapping, accessStart, accessEnd, integrationTime, guard)
			if ok {
				reservations = append(reservations, reservation{Start: at, End: at.Add(slotSpan), Site: target})
				placed = true
				break
			}
		}
		if !observed && !placed && len(plan.Timeline.Phenomena) > 0 {
			infeasible = append(infeasible, &SchedulingInfeasible{
				Site:   target.Name,
				Reason: "no access window left room for the integration time plus slew guard bands",
			})
		}
	}

	sort.Slice(reservations, func(i, j int) bool { return reservations[i].Start.Before(reservations[j].Start) })

	plan := ObservationPlan{Legs: make(map[string]AttitudeLeg, len(reservations))}
	for _, r := range reservations {
		plan.Legs[r.Site.Name] = AttitudeLeg{
			Kind:  LegObservation,
			Name:  "OBS_" + r.Site.Name,
			Start: r.Start,
			End:   r.Start.Add(integrationTime),
			Law:   NewTargetGroundPointing(sat.Orbit, Earth, r.Site.Point),
			Site:  r.Site,
		}
		plan.Order = append(plan.Order, r.Site.Name)
	}
	return plan, infeasible
}

func overlapsWindow(r reservation, start, end time.Time) bool {
	return r.Start.Before(end) && r.End.After(start)
}

// findSlot searches the overlapping reservations (sorted by start) for a
// gap wide enough to hold an integration-time observation preceded and
// followed by a guard band, trying: before the first, between successive
// pairs, and after the last.
func findSlot(overlapping []reservation, accessStart, accessEnd time.Time, integrationTime, guard time.Duration) (bool, time.Time) {
	if len(overlapping) == 0 {
		return true, accessStart
	}
	needed := integrationTime + guard

	if overlapping[0].Start.Sub(accessStart) >= needed {
		return true, accessStart
	}
	for i := 1; i < len(overlapping); i++ {
		if overlapping[i].Start.Sub(overlapping[i-1].End) >= needed {
			return true, overlapping[i-1].End
		}
	}
	last := overlapping[len(overlapping)-1]
	if accessEnd.Sub(last.End) >= needed {
		return true, last.End
	}
	return false, time.Time{}
}
