package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Players int      `env:"TEST_PLAYERS" envDefault:"2"`
	Numbers []string `env:"TEST_NUMBERS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Players != 2 {
		t.Fatalf("expected default players 2, got %d", cfg.Players)
	}
	if len(cfg.Numbers) != 0 {
		t.Fatalf("expected no numbers, got %v", cfg.Numbers)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CARDQUEST_TEST_PLAYERS", "5")
	t.Setenv("CARDQUEST_TEST_NUMBERS", "a,b")
	t.Setenv("TEST_PLAYERS", "9")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Players != 5 {
		t.Fatalf("expected prefixed players 5, got %d", cfg.Players)
	}
	if len(cfg.Numbers) != 2 || cfg.Numbers[0] != "a" || cfg.Numbers[1] != "b" {
		t.Fatalf("expected numbers [a b], got %v", cfg.Numbers)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CARDQUEST_TEST_PLAYERS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
