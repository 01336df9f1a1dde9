package eosched

import (
	"context"
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Mission ties together a satellite, a list of candidate sites and a
// mission horizon, and drives the four-stage pipeline of spec.md §2:
// access planning, observation scheduling, cinematic assembly and
// validation. Grounded on mission.go's Mission{Vehicle, Orbit, ...},
// generalized from "propagate a single spacecraft state forward" to
// "compute and validate an attitude program," and from Mission's ad hoc
// logger field to a constructor-injected kitlog.Logger, matching the
// logging pattern OrbitEstimate uses in estimate.go.
type Mission struct {
	Satellite *Satellite
	Sites     []Site
	Config    *Config
	logger    kitlog.Logger
}

// NewMission returns a Mission ready to compute its plan, with a
// logfmt logger writing to stdout, as estimate.go's NewOrbitEstimate
// constructs its own.
func NewMission(sat *Satellite, sites []Site, cfg *Config) *Mission {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "mission", "eosched")
	return &Mission{Satellite: sat, Sites: sites, Config: cfg, logger: logger}
}

// Plan is the complete output of running the pipeline: the access plans,
// the observation plan, the assembled cinematic plan, its validation
// result and final score.
type Plan struct {
	AccessPlans      []AccessPlan
	ObservationPlan  ObservationPlan
	Infeasible       []*SchedulingInfeasible
	CinematicPlan    []AttitudeLeg
	Validation       ValidationResult
	Score            float64
}

// ComputePlan runs the full pipeline: parallel access computation,
// greedy observation scheduling, cinematic assembly, and validation.
// Logging follows mission.go's LogStatus/Propagate pattern of periodic,
// leveled structured log lines.
func (m *Mission) ComputePlan(ctx context.Context) (*Plan, error) {
	m.logger.Log("level", "info", "subsys", "access", "status", "started", "sites", len(m.Sites))
	accessPlans := ComputeAccessPlans(ctx, m.Satellite, m.Sites, m.Config)
	for _, ap := range accessPlans {
		if ap.Err != nil {
			m.logger.Log("level", "warning", "subsys", "access", "site", ap.Site.Name, "error", ap.Err)
		}
	}

	m.logger.Log("level", "info", "subsys", "schedule", "status", "started")
	obsPlan, infeasible := ComputeObservationPlan(accessPlans, m.Satellite, m.Config.IntegrationTime)
	for _, inf := range infeasible {
		m.logger.Log("level", "warning", "subsys", "schedule", "site", inf.Site, "error", inf)
	}
	m.logger.Log("level", "info", "subsys", "schedule", "status", "finished", "scheduled", len(obsPlan.Order), "infeasible", len(infeasible))

	m.logger.Log("level", "info", "subsys", "cinematic", "status", "started")
	cinematicPlan := AssembleCinematicPlan(obsPlan, m.Satellite, m.Config.StartDate, m.Config.EndDate)
	for _, leg := range cinematicPlan {
		if leg.SlewWarning != nil {
			m.logger.Log("level", "warning", "subsys", "cinematic", "leg", leg.Name, "error", leg.SlewWarning)
		}
	}
	m.logger.Log("level", "info", "subsys", "cinematic", "status", "finished", "legs", len(cinematicPlan))

	validation := ValidateCinematicPlan(cinematicPlan, m.Satellite.Agility)
	if !validation.Valid {
		m.logger.Log("level", "critical", "subsys", "validate", "status", "invalid", "violations", len(validation.Violations))
		return &Plan{
			AccessPlans:     accessPlans,
			ObservationPlan: obsPlan,
			Infeasible:      infeasible,
			CinematicPlan:   cinematicPlan,
			Validation:      validation,
		}, firstViolation(validation)
	}

	score := ComputeFinalScore(obsPlan)
	m.logger.Log("level", "notice", "subsys", "validate", "status", "valid", "score", score)

	return &Plan{
		AccessPlans:     accessPlans,
		ObservationPlan: obsPlan,
		Infeasible:      infeasible,
		CinematicPlan:   cinematicPlan,
		Validation:      validation,
		Score:           score,
	}, nil
}

func firstViolation(v ValidationResult) *CinematicViolation {
	if len(v.Violations) == 0 {
		return &CinematicViolation{}
	}
	return &v.Violations[0]
}

// String implements the Stringer interface, summarizing the plan for
// log lines and CLI output.
func (p *Plan) String() string {
	return fmt.Sprintf("plan: %d legs, %d observations, valid=%v, score=%.1f",
		len(p.CinematicPlan), len(p.ObservationPlan.Order), p.Validation.Valid, p.Score)
}
