package eosched

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// vtsCatalogEntry mirrors the shape of export.go's CgItems/CgCatalog: the
// minimal subset of the Cosmographia/VTS scenario catalog this scheduler
// needs to describe one leg as a labeled time segment.
type vtsCatalogEntry struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type vtsCatalog struct {
	Version string            `json:"version"`
	Name    string            `json:"name"`
	Items   []vtsCatalogEntry `json:"items"`
}

// WriteVTSVisualization writes the mission's VTS-compatible outputs under
// dir: a position/velocity ephemeris file, an attitude-quaternion file
// and a JSON leg catalog, grounded on export.go's
// createInterpolatedFile/StreamStates xyzv-plus-JSON-catalog pattern.
func WriteVTSVisualization(dir string, ephemeris []EphemerisPoint, legs []AttitudeLeg, stateDT time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &ConfigError{Reason: "creating VTS output directory: " + err.Error()}
	}
	if err := writeEphemerisFile(filepath.Join(dir, "prop-eosched.xyzv"), ephemeris, stateDT); err != nil {
		return err
	}
	if err := writeAttitudeFile(filepath.Join(dir, "attitude-eosched.aem"), legs, stateDT); err != nil {
		return err
	}
	return writeCatalogFile(filepath.Join(dir, "catalog-eosched.json"), legs)
}

func writeEphemerisFile(path string, ephemeris []EphemerisPoint, stateDT time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return &ConfigError{Reason: "creating ephemeris file: " + err.Error()}
	}
	defer f.Close()

	fmt.Fprintf(f, "# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>\n")
	fmt.Fprintf(f, "#   Position in km, velocity in km/sec, time is a UTC Julian date\n")
	fmt.Fprintf(f, "#   Simulation start (UTC): %s\n", stateDT.UTC())
	for _, p := range ephemeris {
		jd := julian.TimeToJD(p.Time)
		fmt.Fprintf(f, "%.8f %.6f %.6f %.6f %.9f %.9f %.9f\n", jd, p.R[0], p.R[1], p.R[2], p.V[0], p.V[1], p.V[2])
	}
	return nil
}

func writeAttitudeFile(path string, legs []AttitudeLeg, stateDT time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return &ConfigError{Reason: "creating attitude file: " + err.Error()}
	}
	defer f.Close()

	fmt.Fprintf(f, "# Records are <jd> <qw> <qx> <qy> <qz>\n")
	fmt.Fprintf(f, "#   Simulation start (UTC): %s\n", stateDT.UTC())
	for _, leg := range legs {
		const sampleStep = 10 * time.Second
		for t := leg.Start; t.Before(leg.End); t = t.Add(sampleStep) {
			q := leg.AttitudeAt(t).Rotation
			jd := julian.TimeToJD(t)
			fmt.Fprintf(f, "%.8f %.9f %.9f %.9f %.9f\n", jd, q.W, q.X, q.Y, q.Z)
		}
	}
	return nil
}

func writeCatalogFile(path string, legs []AttitudeLeg) error {
	catalog := vtsCatalog{Version: "1.0", Name: "eosched"}
	for _, leg := range legs {
		kind := "nadir"
		switch leg.Kind {
		case LegObservation:
			kind = "observation"
		case LegSlew:
			kind = "slew"
		}
		catalog.Items = append(catalog.Items, vtsCatalogEntry{
			Name:      leg.Name,
			Kind:      kind,
			StartTime: leg.Start.UTC().Format(time.RFC3339),
			EndTime:   leg.End.UTC().Format(time.RFC3339),
		})
	}
	marshaled, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return &ConfigError{Reason: "marshaling VTS catalog: " + err.Error()}
	}
	f, err := os.Create(path)
	if err != nil {
		return &ConfigError{Reason: "creating catalog file: " + err.Error()}
	}
	defer f.Close()
	_, err = f.Write(marshaled)
	return err
}
