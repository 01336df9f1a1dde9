package eosched

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the mission-constants bundle (spec.md §6). Field names mirror
// the original ConstantsBE identifiers; LoadConfig maps each field from an
// explicit scenario key (such as "orbit.altitude").
type Config struct {
	StartDate              time.Time
	EndDate                time.Time
	Altitude               float64 // km, above the WGS84 equatorial radius
	Inclination            float64 // degrees
	AscendingNodeLongitude float64 // degrees
	MeanEccentricity       float64
	IntegrationTime        time.Duration
	MaxSunIncidenceAngle   float64 // degrees
	MaxSunPhaseAngle       float64 // degrees
	PointingCapacity       float64 // degrees, sensor half-aperture
	PathVTSDirectory       string
}

// LoadConfig reads the mission-constants bundle from a TOML scenario file
// using viper, the way cmd/designer and cmd/mission load their scenarios.
func LoadConfig(scenarioPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(scenarioPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("reading %s: %s", scenarioPath, err)}
	}

	start := v.GetTime("mission.start")
	end := v.GetTime("mission.end")
	if !end.After(start) {
		return nil, &ConfigError{Reason: "mission.end must be after mission.start"}
	}

	cfg := &Config{
		StartDate:              start,
		EndDate:                end,
		Altitude:               v.GetFloat64("orbit.altitude"),
		Inclination:            v.GetFloat64("orbit.inclination"),
		AscendingNodeLongitude: v.GetFloat64("orbit.ascendingNodeLongitude"),
		MeanEccentricity:       v.GetFloat64("orbit.meanEccentricity"),
		IntegrationTime:        v.GetDuration("observation.integrationTime"),
		MaxSunIncidenceAngle:   v.GetFloat64("observation.maxSunIncidenceAngle"),
		MaxSunPhaseAngle:       v.GetFloat64("observation.maxSunPhaseAngle"),
		PointingCapacity:       v.GetFloat64("satellite.pointingCapacity"),
		PathVTSDirectory:       v.GetString("output.vtsDirectory"),
	}

	if cfg.IntegrationTime <= 0 {
		return nil, &ConfigError{Reason: "observation.integrationTime must be positive"}
	}
	if cfg.PointingCapacity <= 0 {
		return nil, &ConfigError{Reason: "satellite.pointingCapacity must be positive"}
	}
	if cfg.PathVTSDirectory == "" {
		cfg.PathVTSDirectory = "."
	}
	return cfg, nil
}

// DefaultConfig returns the Pleiades-like scenario constants used by the
// reference mission and by tests, so that a scenario file is optional.
func DefaultConfig(start time.Time) *Config {
	return &Config{
		StartDate:              start,
		EndDate:                start.Add(24 * time.Hour),
		Altitude:               694.0,
		Inclination:            98.29,
		AscendingNodeLongitude: 0.0,
		MeanEccentricity:       0.0,
		IntegrationTime:        10 * time.Second,
		MaxSunIncidenceAngle:   70.0,
		MaxSunPhaseAngle:       50.0,
		PointingCapacity:       30.0,
		PathVTSDirectory:       ".",
	}
}
