package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/agile-eo/eosched"
)

// This binary reads a scenario TOML file and a site CSV file, computes
// the attitude program, and writes the VTS visualization outputs.
// Structured the way cmd/mission/main.go reads its scenario and
// propagates: flag-driven scenario path, viper-backed Config, then a
// single blocking call that does the work and logs its own status.

const defaultScenario = "~~unset~~"

var (
	scenario string
	sitesCSV string
	outDir   string
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "mission scenario TOML file")
	flag.StringVar(&sitesCSV, "sites", "", "observation site list CSV file")
	flag.StringVar(&outDir, "out", "", "override the scenario's VTS output directory")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided: pass -scenario path/to/mission.toml")
	}
	if sitesCSV == "" {
		log.Fatal("no site list provided: pass -sites path/to/sites.csv")
	}

	cfg, err := eosched.LoadConfig(strings.TrimSuffix(scenario, ".toml") + ".toml")
	if err != nil {
		log.Fatalf("loading scenario %s: %s", scenario, err)
	}
	if outDir != "" {
		cfg.PathVTSDirectory = outDir
	}

	sites, err := eosched.ReadSites(sitesCSV)
	if err != nil {
		log.Fatalf("loading site list %s: %s", sitesCSV, err)
	}
	log.Printf("loaded %d candidate sites", len(sites))

	orbit := eosched.NewOrbitFromOE(cfg.StartDate, eosched.Earth.Radius+cfg.Altitude, cfg.MeanEccentricity,
		cfg.Inclination, cfg.AscendingNodeLongitude, 0, 0, eosched.Earth)

	agility := eosched.Agility{
		MaxAngularRate:         eosched.Deg2rad(2.0),
		MaxAngularAcceleration: eosched.Deg2rad(0.5),
		HalfAperture:           eosched.Deg2rad(cfg.PointingCapacity),
	}
	satellite := eosched.NewSatellite(orbit, agility)

	mission := eosched.NewMission(satellite, sites, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	plan, planErr := mission.ComputePlan(ctx)
	if planErr != nil {
		log.Printf("plan invalid: %s", planErr)
	}
	log.Println(plan)

	ephemeris := eosched.GenerateEphemeris(orbit, cfg.StartDate, cfg.EndDate, cfg.IntegrationTime)
	if err := eosched.WriteVTSVisualization(cfg.PathVTSDirectory, ephemeris, plan.CinematicPlan, cfg.StartDate); err != nil {
		log.Fatalf("writing VTS visualization: %s", err)
	}
	if planErr != nil {
		os.Exit(1)
	}
}
