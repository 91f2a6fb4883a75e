package credit

import (
	"math"
	"strconv"

	apperrors "github.com/louisbranch/cardquest/internal/platform/errors"
)

var (
	// ErrNegativeIncome indicates an income below zero or not a number.
	ErrNegativeIncome = apperrors.New(apperrors.CodeApplicationNegativeIncome, "gross annual income must be a non-negative number")
	// ErrNegativeAge indicates an age below zero.
	ErrNegativeAge = apperrors.New(apperrors.CodeApplicationNegativeAge, "age must be non-negative")
)

// Application is a single credit-card application under evaluation.
type Application struct {
	GrossAnnualIncome float64
	Age               int
	// FrequentFlyerNumber is empty when the applicant has none.
	FrequentFlyerNumber string
}

// HasFrequentFlyerNumber reports whether a number was supplied.
func (a Application) HasFrequentFlyerNumber() bool {
	return a.FrequentFlyerNumber != ""
}

// Validate checks the field ranges an evaluation assumes. Evaluate does not
// call it; callers handling untrusted input should.
func (a Application) Validate() error {
	if math.IsNaN(a.GrossAnnualIncome) || a.GrossAnnualIncome < 0 {
		return apperrors.WithMetadata(ErrNegativeIncome.Code, ErrNegativeIncome.Message, map[string]string{
			"income": strconv.FormatFloat(a.GrossAnnualIncome, 'f', -1, 64),
		})
	}
	if a.Age < 0 {
		return apperrors.WithMetadata(ErrNegativeAge.Code, ErrNegativeAge.Message, map[string]string{
			"age": strconv.Itoa(a.Age),
		})
	}
	return nil
}

// Decision is the outcome of an evaluation.
type Decision int

const (
	DecisionUnspecified Decision = iota
	AutoAccepted
	AutoDeclined
	ReferredToHuman
)

func (d Decision) String() string {
	switch d {
	case DecisionUnspecified:
		return "Unspecified"
	case AutoAccepted:
		return "AutoAccepted"
	case AutoDeclined:
		return "AutoDeclined"
	case ReferredToHuman:
		return "ReferredToHuman"
	default:
		return "Unknown"
	}
}
