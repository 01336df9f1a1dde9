package eosched

import "fmt"

// ConfigError indicates a malformed mission-constants bundle or a request for
// more sites than are available.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Reason)
}

// PropagationFailure indicates the orbit propagator refused to advance.
// When raised during access computation it is scoped to a single site and
// the site is dropped from the access plan; everywhere else it is fatal.
type PropagationFailure struct {
	Site   string
	Reason string
}

func (e *PropagationFailure) Error() string {
	if e.Site == "" {
		return fmt.Sprintf("propagation failure: %s", e.Reason)
	}
	return fmt.Sprintf("propagation failure for %s: %s", e.Site, e.Reason)
}

// SchedulingInfeasible is recorded, not returned, when a target with access
// windows could not be placed by the scheduler.
type SchedulingInfeasible struct {
	Site   string
	Reason string
}

func (e *SchedulingInfeasible) Error() string {
	return fmt.Sprintf("%s could not be scheduled: %s", e.Site, e.Reason)
}

// CinematicViolation is recorded by the Validator when a slew's wall-clock
// window is shorter than the theoretical duration it requires.
type CinematicViolation struct {
	LegName        string
	ActualSeconds  float64
	TheorySeconds  float64
}

func (e *CinematicViolation) Error() string {
	return fmt.Sprintf("leg %s: actual duration %.3fs shorter than theoretical %.3fs",
		e.LegName, e.ActualSeconds, e.TheorySeconds)
}
