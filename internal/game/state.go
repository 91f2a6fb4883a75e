package game

import (
	"go.uber.org/zap"

	apperrors "github.com/louisbranch/cardquest/internal/platform/errors"
	"github.com/louisbranch/cardquest/internal/platform/id"
)

// EarthquakeDamage is the health every party member loses in an earthquake.
const EarthquakeDamage = 25

// GameState holds the party. ID identifies the state for its whole life,
// including across Reset.
type GameState struct {
	ID      string
	Players []*PlayerCharacter

	logger *zap.Logger
}

// StateOption configures a GameState.
type StateOption func(*GameState)

// WithStateLogger sets the logger party events are reported to.
func WithStateLogger(logger *zap.Logger) StateOption {
	return func(s *GameState) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewGameState returns an empty state with a fresh ID.
func NewGameState(opts ...StateOption) (*GameState, error) {
	stateID, err := id.NewID()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeGameStateIDUnavailable, "generate game state id", err)
	}
	s := &GameState{ID: stateID, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddPlayer appends p to the party. Nil players are ignored; duplicates are
// not detected.
func (s *GameState) AddPlayer(p *PlayerCharacter) {
	if p == nil {
		return
	}
	s.Players = append(s.Players, p)
}

// Earthquake deals EarthquakeDamage to every current party member.
func (s *GameState) Earthquake() {
	for _, p := range s.Players {
		p.TakeDamage(EarthquakeDamage)
	}
	s.logger.Info("earthquake",
		zap.String("game_state_id", s.ID),
		zap.Int("players", len(s.Players)),
		zap.Int("damage", EarthquakeDamage),
	)
}

// Reset removes every player. The ID is kept.
func (s *GameState) Reset() {
	removed := len(s.Players)
	s.Players = nil
	s.logger.Info("game state reset",
		zap.String("game_state_id", s.ID),
		zap.Int("removed", removed),
	)
}
