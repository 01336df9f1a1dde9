package eosched

import (
	"sort"
	"time"
)

// AssembleCinematicPlan builds the gap-free, chronologically strict leg
// sequence spanning [horizonStart, horizonEnd]: an initial nadir leg, a
// slew into the first observation, each observation separated from the
// next either by a single direct slew or (when the gap exceeds twice the
// satellite's maximum slew duration) by slew-out/nadir-rest/slew-in, and a final slew
// back to nadir. Ported in structure from
// CompleteMission.computeCinematicPlan (spec.md §4.5).
func AssembleCinematicPlan(plan ObservationPlan, sat *Satellite, horizonStart, horizonEnd time.Time) []AttitudeLeg {
	names := append([]string(nil), plan.Order...)
	sort.Slice(names, func(i, j int) bool {
		return plan.Legs[names[i]].Start.Before(plan.Legs[names[j]].Start)
	})

	nadirLaw := sat.Nadir
	maxTimeToNadir := time.Duration(sat.MaxSlewDuration() * float64(time.Second))

	var legs []AttitudeLeg
	if len(names) == 0 {
		legs = append(legs, AttitudeLeg{Kind: LegNadir, Name: "Nadir_Law", Start: horizonStart, End: horizonEnd, Law: nadirLaw})
		return legs
	}

	var endPrevious Attitude
	var endPreviousT time.Time
	var previousSite string

	for idx, name := range names {
		obs := plan.Legs[name]
		startObsAttitude := obs.Law.AttitudeAt(obs.Start)
		endObsAttitude := obs.Law.AttitudeAt(obs.End)

		if idx == 0 {
			endNadir1 := obs.Start.Add(-maxTimeToNadir)
			nadir1 := AttitudeLeg{Kind: LegNadir, Name: "Nadir_Law_1", Start: horizonStart, End: endNadir1, Law: nadirLaw}
			endNadir1Attitude := nadirLaw.AttitudeAt(endNadir1)
			slew1 := AttitudeLeg{
				Kind: LegSlew, Name: "Slew_Nadir_to_" + name,
				Start: endNadir1, End: obs.Start,
				StartAttitude: endNadir1Attitude, EndAttitude: startObsAttitude,
				SlewWarning: SlewKinematicsWarning(endNadir1Attitude, startObsAttitude, endNadir1, obs.Start),
			}
			legs = append(legs, nadir1, slew1)
		} else {
			if obs.Start.Sub(endPreviousT) > 2*maxTimeToNadir {
				endNadirSlewInter1 := endPreviousT.Add(maxTimeToNadir)
				beginNadirSlewInter2 := obs.Start.Add(-maxTimeToNadir)
				beginNadirIntAttitude := nadirLaw.AttitudeAt(endNadirSlewInter1)
				endNadirIntAttitude := nadirLaw.AttitudeAt(beginNadirSlewInter2)

				slewInter1 := AttitudeLeg{
					Kind: LegSlew, Name: "Slew_" + previousSite + "_to_NadirInter",
					Start: endPreviousT, End: endNadirSlewInter1,
					StartAttitude: endPrevious, EndAttitude: beginNadirIntAttitude,
					SlewWarning: SlewKinematicsWarning(endPrevious, beginNadirIntAttitude, endPreviousT, endNadirSlewInter1),
				}
				nadirInter := AttitudeLeg{Kind: LegNadir, Name: "Nadir_Law_Inter", Start: endNadirSlewInter1, End: beginNadirSlewInter2, Law: nadirLaw}
				slewInter2 := AttitudeLeg{
					Kind: LegSlew, Name: "Slew_NadirInter_to_" + name,
					Start: beginNadirSlewInter2, End: obs.Start,
					StartAttitude: endNadirIntAttitude, EndAttitude: startObsAttitude,
					SlewWarning: SlewKinematicsWarning(endNadirIntAttitude, startObsAttitude, beginNadirSlewInter2, obs.Start),
				}
				legs = append(legs, slewInter1, nadirInter, slewInter2)
			} else {
				slew := AttitudeLeg{
					Kind: LegSlew, Name: "Slew_" + previousSite + "_to_" + name,
					Start: endPreviousT, End: obs.Start,
					StartAttitude: endPrevious, EndAttitude: startObsAttitude,
					SlewWarning: SlewKinematicsWarning(endPrevious, startObsAttitude, endPreviousT, obs.Start),
				}
				legs = append(legs, slew)
			}
		}

		legs = append(legs, obs)
		endPrevious = endObsAttitude
		endPreviousT = obs.End
		previousSite = name

		if idx == len(names)-1 {
			startNadir2 := obs.End.Add(time.Duration(sat.MaxSlewDuration() * float64(time.Second)))
			startNadir2Attitude := nadirLaw.AttitudeAt(startNadir2)
			slew2 := AttitudeLeg{
				Kind: LegSlew, Name: "Slew_" + name + "_to_Nadir",
				Start: obs.End, End: startNadir2,
				StartAttitude: endObsAttitude, EndAttitude: startNadir2Attitude,
				SlewWarning: SlewKinematicsWarning(endObsAttitude, startNadir2Attitude, obs.End, startNadir2),
			}
			nadir2 := AttitudeLeg{Kind: LegNadir, Name: "Nadir_Law_2", Start: startNadir2, End: horizonEnd, Law: nadirLaw}
			legs = append(legs, slew2, nadir2)
		}
	}
	return legs
}
