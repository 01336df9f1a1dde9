package eosched

import (
	"math"
	"time"
)

// checkInterval is the coarse sampling step used to scan for sign changes
// of a detector's scalar function, and bisectionTolerance the convergence
// criterion once a bracket is found. spec.md §4.2 and §9 permit a direct
// geometric sampler in place of Orekit's black-box EventDetector/
// EventsLogger machinery, provided the same 120s/1e-4s figures are used.
const (
	checkInterval       = 120 * time.Second
	bisectionTolerance  = 100 * time.Microsecond // 1e-4s
	bisectionMaxDivides = 64
)

// scalarFunc returns a detector's signed value at an instant: positive
// while the condition holds, negative while it does not, with a root at
// the boundary. This is the direct-geometric equivalent of Orekit's
// g-function for SensorVisibilityDetector / ThreeBodiesAngleDetector.
type scalarFunc func(t time.Time) float64

// findEvents samples f over [start, end] at checkInterval, brackets every
// sign change and bisects it down to bisectionTolerance, and returns the
// resulting CodedEvents in chronological order tagged with code.
func findEvents(code EventCode, f scalarFunc, start, end time.Time) []CodedEvent {
	var events []CodedEvent
	prevT := start
	prevV := f(prevT)
	for t := start.Add(checkInterval); !t.After(end); t = t.Add(checkInterval) {
		v := f(t)
		if (prevV <= 0) != (v <= 0) {
			root := bisect(f, prevT, prevV, t, v)
			events = append(events, CodedEvent{Time: root, Code: code, Rising: v > 0})
		}
		prevT, prevV = t, v
	}
	if end.After(prevT) {
		v := f(end)
		if (prevV <= 0) != (v <= 0) {
			root := bisect(f, prevT, prevV, end, v)
			events = append(events, CodedEvent{Time: root, Code: code, Rising: v > 0})
		}
	}
	return events
}

// bisect finds the root of f between (tA, vA) and (tB, vB), which must
// straddle zero, to within bisectionTolerance.
func bisect(f scalarFunc, tA time.Time, vA float64, tB time.Time, vB float64) time.Time {
	for i := 0; i < bisectionMaxDivides && tB.Sub(tA) > bisectionTolerance; i++ {
		mid := tA.Add(tB.Sub(tA) / 2)
		vMid := f(mid)
		if (vA <= 0) == (vMid <= 0) {
			tA, vA = mid, vMid
		} else {
			tB, vB = mid, vMid
		}
	}
	return tA.Add(tB.Sub(tA) / 2)
}

// VisibilityFunc returns the scalar function for the line-of-sight
// detector over a site: the satellite's elevation above the site's local
// horizon, positive while the satellite is above it. The sensor's field
// of regard is not part of this check. Grounded on
// SensorVisibilityDetector/SensorModel's Earth-masking geometry in the
// Java mission's createSiteAccessTimeline.
func VisibilityFunc(o *Orbit, site Site) scalarFunc {
	return func(t time.Time) float64 {
		R, _ := o.StateAt(t)
		θgst := gstAt(t, o.Epoch)
		rECEF := ECI2ECEF(R, θgst)
		return site.ElevationAt(rECEF)
	}
}

// SunIncidenceFunc returns the scalar function for the sun-incidence
// detector: positive while the angle between the site's local vertical
// and the site-to-Sun direction stays within maxIncidence, i.e. the
// supplement-angle convention the Java mission uses for its
// ThreeBodiesAngleDetector (there, the angle is measured from the
// nadir (site-to-Earth-centre) direction, with threshold 180°-maxIncidence; measured
// from the zenith directly as done here, the equivalent threshold is
// simply maxIncidence — see SPEC_FULL.md's resolution of this Open
// Question).
func SunIncidenceFunc(site Site, maxIncidence float64) scalarFunc {
	vertical := unit(site.R)
	return func(t time.Time) float64 {
		sun, err := SunPositionECI(t)
		if err != nil {
			return -1
		}
		toSun := unit(vecSub(sun, site.R))
		angle := math.Acos(clamp(dot(vertical, toSun), -1, 1))
		return maxIncidence - angle
	}
}

// NonGlareFunc returns the scalar function for the non-glare detector:
// positive while the phase angle measured at the site, between the
// site-to-Sun and site-to-satellite directions, stays below maxPhase,
// avoiding specular sun glint in the sensor, grounded on the
// Java mission's second ThreeBodiesAngleDetector (BodyOrder.SECOND).
func NonGlareFunc(o *Orbit, site Site, maxPhase float64) scalarFunc {
	return func(t time.Time) float64 {
		sun, err := SunPositionECI(t)
		if err != nil {
			return -1
		}
		R, _ := o.StateAt(t)
		siteECI := ECEF2ECI(site.R, gstAt(t, o.Epoch))
		toSun := unit(vecSub(sun, siteECI))
		toSat := unit(vecSub(R, siteECI))
		angle := math.Acos(clamp(dot(toSun, toSat), -1, 1))
		return maxPhase - angle
	}
}
