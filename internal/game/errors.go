package game

import "errors"

// Typed rejections surfaced to front-ends. A rejected call never mutates
// combat state.
var (
	// ErrUnknownCard is returned by registry lookups for names not in the
	// card table.
	ErrUnknownCard = errors.New("unknown card")

	// ErrInsufficientEnergy rejects a play whose cost exceeds the player's
	// current energy.
	ErrInsufficientEnergy = errors.New("insufficient energy")

	// ErrInvalidTarget rejects a play whose target index is missing, out of
	// range, or refers to a dead enemy.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrCombatOver rejects any action after the combat reached Victory or
	// Defeat.
	ErrCombatOver = errors.New("combat already over")
)
