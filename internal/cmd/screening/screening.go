// Package screening parses screening command flags and evaluates one
// credit-card application.
package screening

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/cardquest/internal/credit"
	"github.com/louisbranch/cardquest/internal/credit/validator"
	entrypoint "github.com/louisbranch/cardquest/internal/platform/cmd"
	"go.uber.org/zap"
)

// Config holds screening command configuration.
type Config struct {
	Income              float64 `env:"SCREENING_INCOME"`
	Age                 int     `env:"SCREENING_AGE"`
	FrequentFlyerNumber string  `env:"SCREENING_FFN"`
	UseOut              bool    `env:"SCREENING_USE_OUT"`
	Verbose             bool    `env:"SCREENING_VERBOSE"`

	Validator validator.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Float64Var(&cfg.Income, "income", cfg.Income, "Gross annual income of the applicant")
	fs.IntVar(&cfg.Age, "age", cfg.Age, "Age of the applicant")
	fs.StringVar(&cfg.FrequentFlyerNumber, "ffn", cfg.FrequentFlyerNumber, "Frequent flyer number (empty for none)")
	fs.BoolVar(&cfg.UseOut, "out", cfg.UseOut, "Read validator answers through the output-parameter form")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log at debug level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Application returns the application described by cfg.
func (c Config) Application() credit.Application {
	return credit.Application{
		GrossAnnualIncome:   c.Income,
		Age:                 c.Age,
		FrequentFlyerNumber: c.FrequentFlyerNumber,
	}
}

// Run evaluates the configured application and writes the decision to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	app := cfg.Application()
	if err := app.Validate(); err != nil {
		return fmt.Errorf("invalid application: %w", err)
	}

	logger, err := entrypoint.NewLogger(entrypoint.ServiceScreening, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceScreening, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		allowList := validator.FromConfig(cfg.Validator)
		logger.Debug("validator configured", zap.Int("valid_numbers", allowList.Len()))

		evaluator, err := credit.NewEvaluator(allowList, credit.WithLogger(logger))
		if err != nil {
			return err
		}

		var decision credit.Decision
		if cfg.UseOut {
			decision = evaluator.EvaluateUsingOut(ctx, app)
		} else {
			decision = evaluator.Evaluate(ctx, app)
		}
		_, err = fmt.Fprintf(out, "decision: %s\n", decision)
		return err
	})
}
