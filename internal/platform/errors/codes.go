// Package errors provides coded domain errors shared by cardquest packages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Application errors
	CodeApplicationNegativeIncome Code = "APPLICATION_NEGATIVE_INCOME"
	CodeApplicationNegativeAge    Code = "APPLICATION_NEGATIVE_AGE"

	// Boss errors
	CodeBossNoSpecialAttacks Code = "BOSS_NO_SPECIAL_ATTACKS"
	CodeBossNegativePower    Code = "BOSS_NEGATIVE_POWER"
	CodeBossNegativeWeight   Code = "BOSS_NEGATIVE_WEIGHT"
	CodeBossZeroTotalWeight  Code = "BOSS_ZERO_TOTAL_WEIGHT"

	// Game state errors
	CodeGameStateIDUnavailable Code = "GAME_STATE_ID_UNAVAILABLE"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"
)

// IsInputError reports whether the code describes caller-supplied input that
// failed validation, as opposed to an environment failure.
func (c Code) IsInputError() bool {
	switch c {
	case CodeApplicationNegativeIncome,
		CodeApplicationNegativeAge,
		CodeBossNoSpecialAttacks,
		CodeBossNegativePower,
		CodeBossNegativeWeight,
		CodeBossZeroTotalWeight:
		return true
	default:
		return false
	}
}
