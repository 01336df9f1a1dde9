package eosched

// Satellite bundles the initial orbit, its default (nadir) attitude law
// and its agility model (spec.md §3's Satellite type). Grounded on
// mission.go's Mission{Vehicle, Orbit}, which similarly pairs a
// propagated orbit with a piece of equipment (there, a Spacecraft with
// thrusters; here, an agility-bounded imaging sensor).
type Satellite struct {
	Orbit   *Orbit
	Nadir   *NadirPointing
	Agility Agility
}

// NewSatellite returns a Satellite whose default attitude law points the
// sensor at nadir and whose agility parameters are as given.
func NewSatellite(orbit *Orbit, agility Agility) *Satellite {
	return &Satellite{
		Orbit:   orbit,
		Nadir:   NewNadirPointing(orbit),
		Agility: agility,
	}
}

// MaxSlewDuration returns the satellite's worst-case rest-to-rest slew
// duration, i.e. spec.md §4.4's S_max.
func (s *Satellite) MaxSlewDuration() float64 {
	return s.Agility.MaxSlewDuration()
}
