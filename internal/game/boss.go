package game

import (
	"strconv"

	apperrors "github.com/louisbranch/cardquest/internal/platform/errors"
)

var (
	// ErrNoSpecialAttacks indicates a boss was built without attacks.
	ErrNoSpecialAttacks = apperrors.New(apperrors.CodeBossNoSpecialAttacks, "boss needs at least one special attack")
	// ErrNegativePower indicates an attack with power below zero.
	ErrNegativePower = apperrors.New(apperrors.CodeBossNegativePower, "special attack power must be non-negative")
	// ErrNegativeWeight indicates an attack with weight below zero.
	ErrNegativeWeight = apperrors.New(apperrors.CodeBossNegativeWeight, "special attack weight must be non-negative")
	// ErrZeroTotalWeight indicates no attack can ever activate.
	ErrZeroTotalWeight = apperrors.New(apperrors.CodeBossZeroTotalWeight, "special attack weights must not all be zero")
)

// SpecialAttack is one component of a boss's special attack. Weight is the
// attack's relative chance of being the one that activates.
type SpecialAttack struct {
	Name   string
	Power  float64
	Weight float64
}

// BossEnemy is an enemy whose special attack power is fixed at construction.
type BossEnemy struct {
	attacks []SpecialAttack
	total   float64
}

// NewBossEnemy validates attacks and precomputes the total special attack
// power: the weight-averaged power of the attacks.
func NewBossEnemy(attacks ...SpecialAttack) (*BossEnemy, error) {
	if len(attacks) == 0 {
		return nil, ErrNoSpecialAttacks
	}
	var weighted, weights float64
	for _, a := range attacks {
		if a.Power < 0 {
			return nil, attackError(ErrNegativePower, a.Name, a.Power)
		}
		if a.Weight < 0 {
			return nil, attackError(ErrNegativeWeight, a.Name, a.Weight)
		}
		weighted += a.Power * a.Weight
		weights += a.Weight
	}
	if weights == 0 {
		return nil, ErrZeroTotalWeight
	}
	return &BossEnemy{
		attacks: append([]SpecialAttack(nil), attacks...),
		total:   weighted / weights,
	}, nil
}

// DefaultSpecialAttacks returns the attack set of DefaultBossEnemy.
func DefaultSpecialAttacks() []SpecialAttack {
	return []SpecialAttack{
		{Name: "Inferno", Power: 400, Weight: 1},
		{Name: "Tail Sweep", Power: 150, Weight: 2},
		{Name: "Claw Rake", Power: 100, Weight: 3},
	}
}

// DefaultBossEnemy returns the standard boss, whose total special attack
// power is 1000/6.
func DefaultBossEnemy() *BossEnemy {
	b, err := NewBossEnemy(DefaultSpecialAttacks()...)
	if err != nil {
		panic("game: invalid default special attacks: " + err.Error())
	}
	return b
}

// TotalSpecialAttackPower returns the precomputed weighted power.
func (b *BossEnemy) TotalSpecialAttackPower() float64 {
	return b.total
}

// SpecialAttacks returns a copy of the boss's attacks.
func (b *BossEnemy) SpecialAttacks() []SpecialAttack {
	return append([]SpecialAttack(nil), b.attacks...)
}

func attackError(base *apperrors.Error, name string, value float64) error {
	return apperrors.WithMetadata(base.Code, base.Message, map[string]string{
		"attack": name,
		"value":  strconv.FormatFloat(value, 'f', -1, 64),
	})
}
