package main

import (
	"testing"
)

func TestParseFlagsLeavesUnsetFlagsNil(t *testing.T) {
	overrides, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}

	if overrides.Port != nil || overrides.CatalogFile != nil || overrides.LogLevel != nil {
		t.Fatalf("expected string overrides to be unset: %+v", overrides)
	}
	if overrides.WasteFactor != nil || overrides.CartonCoverage != nil {
		t.Fatalf("expected calculator overrides to be unset: %+v", overrides)
	}
	if overrides.RateLimitRPS != nil || overrides.RateLimitBurst != nil {
		t.Fatalf("expected rate limit overrides to be unset: %+v", overrides)
	}
}

func TestParseFlagsAppliesValues(t *testing.T) {
	overrides, err := parseFlags([]string{
		"--config", "config.yaml",
		"--env-file", "prod.env",
		"--port", "9000",
		"--catalog", "data/catalog.yaml",
		"--waste-factor", "0",
		"--carton-coverage", "2.16",
		"--log-level", "debug",
		"--rate-limit-rps", "0",
		"--rate-limit-burst", "5",
	})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}

	if overrides.ConfigFile != "config.yaml" || overrides.EnvFile != "prod.env" {
		t.Fatalf("unexpected file overrides: %+v", overrides)
	}
	if overrides.Port == nil || *overrides.Port != "9000" {
		t.Fatalf("expected port override")
	}
	if overrides.CatalogFile == nil || *overrides.CatalogFile != "data/catalog.yaml" {
		t.Fatalf("expected catalog override")
	}
	if overrides.WasteFactor == nil || *overrides.WasteFactor != 0 {
		t.Fatalf("expected explicit zero waste factor to be applied")
	}
	if overrides.CartonCoverage == nil || *overrides.CartonCoverage != 2.16 {
		t.Fatalf("expected carton coverage override")
	}
	if overrides.LogLevel == nil || *overrides.LogLevel != "debug" {
		t.Fatalf("expected log level override")
	}
	if overrides.RateLimitRPS == nil || *overrides.RateLimitRPS != 0 {
		t.Fatalf("expected rate limit to be disabled")
	}
	if overrides.RateLimitBurst == nil || *overrides.RateLimitBurst != 5 {
		t.Fatalf("expected burst override")
	}
}

func TestParseFlagsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseFlags([]string{"--tile-size", "60x60"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
