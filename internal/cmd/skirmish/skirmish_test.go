package skirmish

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"strings"
	"testing"

	"github.com/louisbranch/cardquest/internal/game"
	"github.com/louisbranch/cardquest/internal/random"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("skirmish", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Players != 2 {
		t.Fatalf("expected default players 2, got %d", cfg.Players)
	}
	if cfg.Earthquakes != 1 {
		t.Fatalf("expected default earthquakes 1, got %d", cfg.Earthquakes)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected unset seed, got %d", cfg.Seed)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("CARDQUEST_SKIRMISH_EARTHQUAKES", "3")
	fs := flag.NewFlagSet("skirmish", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-players", "4", "-seed", "7"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Players != 4 || cfg.Earthquakes != 3 || cfg.Seed != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRunRejectsNegativeCounts(t *testing.T) {
	for _, cfg := range []Config{{Players: -1}, {Earthquakes: -1}} {
		if err := Run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		}
	}
}

func TestRunReportsParty(t *testing.T) {
	t.Setenv("CARDQUEST_OTEL_ENDPOINT", "")
	const seed = 11

	rng := random.NewRand(seed)
	var want []int
	for i := 0; i < 2; i++ {
		p := game.NewPlayerCharacter(rng)
		p.Sleep()
		p.TakeDamage(game.EarthquakeDamage)
		p.TakeDamage(game.EarthquakeDamage)
		want = append(want, p.Health)
	}

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Players: 2, Earthquakes: 2, Seed: seed}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for i, health := range want {
		line := fmt.Sprintf("Adventurer %d: health %d\n", i+1, health)
		if !strings.Contains(got, line) {
			t.Fatalf("output missing %q:\n%s", line, got)
		}
	}
	if !strings.Contains(got, "boss special attack power: 166.667\n") {
		t.Fatalf("output missing boss power:\n%s", got)
	}
	if !strings.Contains(got, "party reset: 0 players\n") {
		t.Fatalf("output missing reset line:\n%s", got)
	}
}
