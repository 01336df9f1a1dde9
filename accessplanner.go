package eosched

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// AccessPlan is the per-site access timeline computed over the mission
// horizon: the AND of visibility, sun-incidence and non-glare, filtered
// to a minimum duration (spec.md §4.1/§4.2, Java mission's
// createSiteAccessTimeline + propagateTimelines).
type AccessPlan struct {
	Site     Site
	Timeline Timeline
	Err      error
}

// ComputeAccessPlans computes the access timeline for every site in
// parallel, one goroutine per site bounded by a semaphore sized to
// runtime.NumCPU(), writing results into a pre-sized slice indexed by
// input position so no lock is needed on the result set. Grounded on
// ChrisB0-2-StarGo's passes.Predict (spec.md §5).
func ComputeAccessPlans(ctx context.Context, sat *Satellite, sites []Site, cfg *Config) []AccessPlan {
	results := make([]AccessPlan, len(sites))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i, site := range sites {
		wg.Add(1)
		go func(idx int, s Site) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = AccessPlan{Site: s, Err: ctx.Err()}
				return
			}

			results[idx] = computeSiteAccess(sat, s, cfg)
		}(i, site)
	}
	wg.Wait()
	return results
}

// computeSiteAccess builds the AND-combined, duration-filtered access
// timeline for one site. It first probes SunPositionECI once: the
// sun-incidence and non-glare scalarFuncs below have no error channel of
// their own and fold a propagation failure into a "condition never holds"
// sentinel, which would otherwise make a VSOP87 load failure
// indistinguishable from a genuinely dark or glared-out site. Surfacing the
// failure here, before either detector ever samples it, keeps that
// distinction visible per spec.md §7's PropagationFailure contract.
func computeSiteAccess(sat *Satellite, site Site, cfg *Config) AccessPlan {
	start, end := cfg.StartDate, cfg.EndDate

	if _, err := SunPositionECI(start); err != nil {
		return AccessPlan{Site: site, Err: &PropagationFailure{Site: site.Name, Reason: err.Error()}}
	}

	visEvents := findEvents(CodeVisibility, VisibilityFunc(sat.Orbit, site), start, end)
	visTL := eventsToPhenomena(CodeVisibility, visEvents, start, end)

	sunEvents := findEvents(CodeSunIncidence, SunIncidenceFunc(site, Deg2rad(cfg.MaxSunIncidenceAngle)), start, end)
	sunTL := eventsToPhenomena(CodeSunIncidence, sunEvents, start, end)

	glareEvents := findEvents(CodeNonGlare, NonGlareFunc(sat.Orbit, site, Deg2rad(cfg.MaxSunPhaseAngle)), start, end)
	glareTL := eventsToPhenomena(CodeNonGlare, glareEvents, start, end)

	combined := visTL.And(sunTL, CodeVisibility).And(glareTL, CodeVisibility)

	minDuration := time.Duration(cfg.IntegrationTime)
	if site.MinDuration > 0 {
		siteMin := time.Duration(site.MinDuration * float64(time.Second))
		if siteMin > minDuration {
			minDuration = siteMin
		}
	}
	filtered := combined.FilterByMinDuration(minDuration)

	return AccessPlan{Site: site, Timeline: filtered}
}
