package eosched

import (
	"testing"
	"time"
)

func TestDefaultConfigIsInternallyConsistent(t *testing.T) {
	cfg := DefaultConfig(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if !cfg.EndDate.After(cfg.StartDate) {
		t.Fatal("default config's end date must be after its start date")
	}
	if cfg.IntegrationTime <= 0 {
		t.Fatal("default config's integration time must be positive")
	}
	if cfg.PointingCapacity <= 0 {
		t.Fatal("default config's pointing capacity must be positive")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/scenario.toml")
	if err == nil {
		t.Fatal("expected an error loading a nonexistent scenario file")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected a *ConfigError, got %T", err)
	}
}
