package game

import (
	"math/rand"
	"slices"

	"github.com/louisbranch/cardquest/internal/dice"
)

const (
	// DefaultHealth is the health of a new character.
	DefaultHealth = 100
	// MinHealth is the floor damage cannot push health below.
	MinHealth = 1
	// MaxSleepGain is the largest health gain from one Sleep.
	MaxSleepGain = 100
)

var defaultWeapons = []string{"Long Bow", "Short Bow", "Short Sword"}

// DefaultWeapons returns a copy of the starting weapon list.
func DefaultWeapons() []string {
	return slices.Clone(defaultWeapons)
}

// RandomSource draws integers in [0, n). *rand.Rand satisfies it.
type RandomSource = dice.Source

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// PlayerCharacter is a member of the party.
type PlayerCharacter struct {
	FirstName string
	LastName  string
	// Nickname is empty when the character has none.
	Nickname string
	Health   int
	Weapons  []string

	rng     RandomSource
	damaged bool
}

// NewPlayerCharacter returns a character with default health and weapons.
// A nil src uses the process-wide math/rand source.
func NewPlayerCharacter(src RandomSource) *PlayerCharacter {
	if src == nil {
		src = globalSource{}
	}
	return &PlayerCharacter{
		Health:  DefaultHealth,
		Weapons: DefaultWeapons(),
		rng:     src,
	}
}

// FullName joins the first and last names with a space.
func (p *PlayerCharacter) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsNovice reports whether the character is untouched: default health and
// never damaged.
func (p *PlayerCharacter) IsNovice() bool {
	return !p.damaged && p.Health == DefaultHealth
}

// Sleep restores 1d100 health and returns the gain. Health has no ceiling.
func (p *PlayerCharacter) Sleep() int {
	gain, err := dice.RollOne(p.rng, MaxSleepGain)
	if err != nil {
		// Unreachable: MaxSleepGain is a positive constant.
		panic(err)
	}
	p.Health += gain
	return gain
}

// TakeDamage reduces health by amount, never below MinHealth.
// Non-positive amounts are ignored.
func (p *PlayerCharacter) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.damaged = true
	remaining := p.Health - amount
	if remaining < MinHealth {
		remaining = MinHealth
	}
	p.Health = remaining
}
