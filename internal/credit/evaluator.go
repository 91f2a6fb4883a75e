package credit

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Thresholds used by the decision rule.
const (
	HighIncomeThreshold = 100_000
	LowIncomeThreshold  = 20_000
	// AutoReferralMaxAge is the first age that is not referred on age alone.
	AutoReferralMaxAge = 20
)

const tracerName = "github.com/louisbranch/cardquest/internal/credit"

// Rule names the branch of the decision rule that produced a decision.
type Rule string

const (
	RuleHighIncome            Rule = "high_income"
	RuleLicenseExpired        Rule = "license_expired"
	RuleYoungApplicant        Rule = "young_applicant"
	RuleLowIncome             Rule = "low_income"
	RuleLowIncomeInvalidFlyer Rule = "low_income_invalid_flyer"
	RuleReferral              Rule = "referral"
)

// Evaluator applies the screening rule to applications.
type Evaluator struct {
	validator Validator
	logger    *zap.Logger
	tracer    trace.Tracer
	lookups   int
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets the logger decisions are reported to.
func WithLogger(logger *zap.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTracerProvider sets the provider evaluation spans are started from.
// The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) EvaluatorOption {
	return func(e *Evaluator) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewEvaluator returns an Evaluator consulting validator.
func NewEvaluator(validator Validator, opts ...EvaluatorOption) (*Evaluator, error) {
	if validator == nil {
		return nil, errors.New("frequent flyer validator is required")
	}
	e := &Evaluator{
		validator: validator,
		logger:    zap.NewNop(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// LookupCount returns how many times the validator has been consulted.
func (e *Evaluator) LookupCount() int {
	return e.lookups
}

// Evaluate classifies app. The rule, in precedence order:
//
//  1. income >= HighIncomeThreshold is accepted outright;
//  2. a validator with an expired license refers every remaining case;
//  3. age below AutoReferralMaxAge is referred;
//  4. income below LowIncomeThreshold is declined, valid number or not;
//  5. everything else is referred.
//
// Branches 4 and 5 look the frequent-flyer number up once when present.
func (e *Evaluator) Evaluate(ctx context.Context, app Application) Decision {
	return e.evaluate(ctx, "credit.Evaluate", app, e.validator.IsValid)
}

// EvaluateUsingOut makes the same decision as Evaluate but reads the
// validator's answer through the OutValidator form. Validators that only
// implement Validator are adapted.
func (e *Evaluator) EvaluateUsingOut(ctx context.Context, app Application) Decision {
	lookup := func(number string) bool {
		var valid bool
		if ov, ok := e.validator.(OutValidator); ok {
			ov.CheckValid(number, &valid)
		} else {
			valid = e.validator.IsValid(number)
		}
		return valid
	}
	return e.evaluate(ctx, "credit.EvaluateUsingOut", app, lookup)
}

func (e *Evaluator) evaluate(ctx context.Context, spanName string, app Application, lookup func(string) bool) Decision {
	_, span := e.tracer.Start(ctx, spanName)
	defer span.End()

	before := e.lookups
	decision, rule := e.decide(app, lookup)
	looked := e.lookups > before

	span.SetAttributes(
		attribute.String("credit.decision", decision.String()),
		attribute.String("credit.rule", string(rule)),
		attribute.Bool("credit.frequent_flyer.looked_up", looked),
	)
	e.logger.Debug("credit application evaluated",
		zap.Stringer("decision", decision),
		zap.String("rule", string(rule)),
		zap.Int("age", app.Age),
		zap.Float64("income", app.GrossAnnualIncome),
		zap.Bool("frequent_flyer_looked_up", looked),
	)
	return decision
}

func (e *Evaluator) decide(app Application, lookup func(string) bool) (Decision, Rule) {
	if app.GrossAnnualIncome >= HighIncomeThreshold {
		return AutoAccepted, RuleHighIncome
	}
	if licenseExpired(e.validator) {
		return ReferredToHuman, RuleLicenseExpired
	}
	if app.Age < AutoReferralMaxAge {
		return ReferredToHuman, RuleYoungApplicant
	}

	valid := e.frequentFlyerValid(app, lookup)
	if app.GrossAnnualIncome < LowIncomeThreshold {
		if !valid {
			return AutoDeclined, RuleLowIncomeInvalidFlyer
		}
		// TODO: confirm with product whether a valid number should refer
		// low-income applicants instead of declining them.
		return AutoDeclined, RuleLowIncome
	}
	return ReferredToHuman, RuleReferral
}

// frequentFlyerValid treats an absent number as invalid without a lookup.
func (e *Evaluator) frequentFlyerValid(app Application, lookup func(string) bool) bool {
	if !app.HasFrequentFlyerNumber() {
		return false
	}
	e.lookups++
	return lookup(app.FrequentFlyerNumber)
}
