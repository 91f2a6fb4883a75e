// Package dice rolls polyhedral dice against an injected random source.
package dice

import "errors"

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// Source draws integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// DieRoll captures the results for a single Spec.
type DieRoll struct {
	Sides   int
	Results []int
	Total   int
}

// Result captures the results from rolling every Spec in a request.
type Result struct {
	Rolls []DieRoll
	Total int
}

// Roll rolls each spec in order, drawing every die from src.
//
// Rolls in the result appear in the same order as specs. Each DieRoll total
// is the sum of its results, and the overall Total sums every die rolled.
// Roll is deterministic in the sequence src produces.
//
// At least one spec must be given (ErrMissingDice) and each must have
// positive Sides and Count (ErrInvalidDiceSpec). Validation happens before
// any draw, so a rejected request leaves src untouched.
func Roll(src Source, specs ...Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}
	}

	rolls := make([]DieRoll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			value := rollDie(src, spec.Sides)
			results[i] = value
			rollTotal += value
		}
		rolls = append(rolls, DieRoll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollOne rolls a single die with the given number of sides.
func RollOne(src Source, sides int) (int, error) {
	result, err := Roll(src, Spec{Sides: sides, Count: 1})
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
