// Package random provides seed generation and seeded sources for the game
// model's random rolls.
//
// Seeds come from crypto/rand so that unseeded runs are unpredictable, while
// NewRand lets callers replay a run from a logged seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	apperrors "github.com/louisbranch/cardquest/internal/platform/errors"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSeedUnavailable, "read random seed", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a pseudo-random source deterministic in seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
