package eosched

import (
	"sort"
	"time"
)

// EventCode identifies which boolean condition toggled to produce a
// CodedEvent. Mirrors the small fixed vocabulary of detector outcomes
// the access-timeline construction combines (spec.md §4.1).
type EventCode int

const (
	// CodeVisibility marks the satellite rising above or setting below a
	// site's local horizon; the sensor's field of regard is not checked.
	CodeVisibility EventCode = iota
	// CodeSunIncidence marks entry/exit of the sun-incidence-angle window.
	CodeSunIncidence
	// CodeNonGlare marks entry/exit of the non-glare (sun/satellite/site
	// phase angle) window.
	CodeNonGlare
)

// CodedEvent is an instant at which a named boolean condition toggled,
// together with its direction (Rising: false->true, Falling: true->false).
type CodedEvent struct {
	Time   time.Time
	Code   EventCode
	Rising bool
}

// Phenomenon is a maximal interval during which a condition held true.
type Phenomenon struct {
	Start, End time.Time
	Code       EventCode
}

// Duration returns the phenomenon's length.
func (p Phenomenon) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Timeline is an ordered, non-overlapping sequence of phenomena sharing a
// single logical meaning (e.g. "visible AND sun-incident"). Grounded on
// CompleteMission.java's createSiteAccessTimeline, which builds exactly
// this structure by combining per-detector boolean codes with logical
// AND and then filtering by element type and minimum duration.
type Timeline struct {
	Phenomena []Phenomenon
}

// eventsToPhenomena converts a sorted sequence of rising/falling events for
// a single code into the maximal true-intervals they bound. Events outside
// [start, end) are ignored; an unmatched rising event at the end of the
// horizon is closed at end, and an unmatched falling event at the start is
// presumed to close an interval that began before start.
func eventsToPhenomena(code EventCode, events []CodedEvent, start, end time.Time) Timeline {
	sort.Slice(events, func(i, j int) bool { return events[i].Time.Before(events[j].Time) })

	var tl Timeline
	open := false
	var openAt time.Time
	for _, e := range events {
		if e.Time.Before(start) || !e.Time.Before(end) {
			continue
		}
		if e.Rising {
			if !open {
				open = true
				openAt = e.Time
			}
		} else {
			if open {
				tl.Phenomena = append(tl.Phenomena, Phenomenon{Start: openAt, End: e.Time, Code: code})
				open = false
			} else {
				// A falling edge with no prior rising edge in this
				// window means the condition was already true at start.
				tl.Phenomena = append(tl.Phenomena, Phenomenon{Start: start, End: e.Time, Code: code})
			}
		}
	}
	if open {
		tl.Phenomena = append(tl.Phenomena, Phenomenon{Start: openAt, End: end, Code: code})
	}
	return tl
}

// And intersects two timelines, returning the phenomena where both hold
// simultaneously, tagged with resultCode. Grounded on Orekit's
// BooleanDetector.andCombine / the Java mission's chained
// "Visibility AND SunIncidence [AND NonGlare]" construction.
func (t Timeline) And(other Timeline, resultCode EventCode) Timeline {
	var out Timeline
	i, j := 0, 0
	for i < len(t.Phenomena) && j < len(other.Phenomena) {
		a, b := t.Phenomena[i], other.Phenomena[j]
		start := a.Start
		if b.Start.After(start) {
			start = b.Start
		}
		end := a.End
		if b.End.Before(end) {
			end = b.End
		}
		if start.Before(end) {
			out.Phenomena = append(out.Phenomena, Phenomenon{Start: start, End: end, Code: resultCode})
		}
		if a.End.Before(b.End) {
			i++
		} else {
			j++
		}
	}
	return out
}

// FilterByMinDuration drops every phenomenon no longer than min. The filter
// is strict: a phenomenon exactly min long cannot host an integration of
// duration min and is dropped along with the ones shorter than it. Grounded
// on the Java mission's PhenomenonDurationFilter applied after the AND chain.
func (t Timeline) FilterByMinDuration(min time.Duration) Timeline {
	var out Timeline
	for _, p := range t.Phenomena {
		if p.Duration() > min {
			out.Phenomena = append(out.Phenomena, p)
		}
	}
	return out
}
