// Package skirmish parses skirmish command flags and plays one round of
// party events against the default boss.
package skirmish

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/louisbranch/cardquest/internal/game"
	entrypoint "github.com/louisbranch/cardquest/internal/platform/cmd"
	"github.com/louisbranch/cardquest/internal/random"
	"go.uber.org/zap"
)

// Config holds skirmish command configuration.
type Config struct {
	Players     int   `env:"SKIRMISH_PLAYERS" envDefault:"2"`
	Earthquakes int   `env:"SKIRMISH_EARTHQUAKES" envDefault:"1"`
	Seed        int64 `env:"SKIRMISH_SEED"`
	Verbose     bool  `env:"SKIRMISH_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Players, "players", cfg.Players, "Number of players in the party")
	fs.IntVar(&cfg.Earthquakes, "earthquakes", cfg.Earthquakes, "Number of earthquakes to apply")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for rest rolls (0 picks one)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log at debug level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the counts are usable.
func (c Config) Validate() error {
	if c.Players < 0 {
		return errors.New("players must be non-negative")
	}
	if c.Earthquakes < 0 {
		return errors.New("earthquakes must be non-negative")
	}
	return nil
}

// Run builds a party, rests it, applies the earthquakes and reports the
// outcome to out before resetting the party.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := entrypoint.NewLogger(entrypoint.ServiceSkirmish, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSkirmish, entrypoint.RunOptions{Logger: logger}, func(context.Context) error {
		return play(cfg, logger, out)
	})
}

func play(cfg Config, logger *zap.Logger, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	logger.Info("skirmish starting", zap.Int64("seed", seed), zap.Int("players", cfg.Players))
	rng := random.NewRand(seed)

	state, err := game.NewGameState(game.WithStateLogger(logger))
	if err != nil {
		return err
	}
	for i := 1; i <= cfg.Players; i++ {
		p := game.NewPlayerCharacter(rng)
		p.FirstName = "Adventurer"
		p.LastName = strconv.Itoa(i)
		gain := p.Sleep()
		logger.Debug("player rested", zap.String("player", p.FullName()), zap.Int("gain", gain))
		state.AddPlayer(p)
	}
	for i := 0; i < cfg.Earthquakes; i++ {
		state.Earthquake()
	}

	w := &errWriter{w: out}
	w.printf("game state %s seed %d\n", state.ID, seed)
	for _, p := range state.Players {
		w.printf("%s: health %d\n", p.FullName(), p.Health)
	}
	w.printf("boss special attack power: %.3f\n", game.DefaultBossEnemy().TotalSpecialAttackPower())
	state.Reset()
	w.printf("party reset: %d players\n", len(state.Players))
	return w.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
