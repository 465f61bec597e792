package game

import "math/rand"

// IntentSelector decides an enemy's next telegraphed action. Next is called
// at combat start and again right after the enemy acts, so the player always
// sees the coming move. Randomness, if a selector wants any, comes from the
// combat's seeded source.
type IntentSelector interface {
	Next(e *Enemy, turn int, rng *rand.Rand) Intent
}

// FixedSelector always announces the same intent.
type FixedSelector struct {
	Intent Intent
}

func (s FixedSelector) Next(e *Enemy, turn int, rng *rand.Rand) Intent {
	return s.Intent
}

// AttackEvery is a convenience for the common "always attack for n" enemy.
func AttackEvery(damage int) IntentSelector {
	return FixedSelector{Intent: Intent{Type: IntentAttack, Amount: damage}}
}

// PatternSelector is the default enemy behavior: defend when hurt on every
// third turn, gather Strength on every fourth, otherwise attack with damage
// that scales as the combat drags on.
type PatternSelector struct {
	AttackDamage int
	DefendBlock  int
}

func NewPatternSelector(attackDamage, defendBlock int) *PatternSelector {
	return &PatternSelector{AttackDamage: attackDamage, DefendBlock: defendBlock}
}

func (s *PatternSelector) Next(e *Enemy, turn int, _ *rand.Rand) Intent {
	hurt := e.MaxHP > 0 && e.HP*2 < e.MaxHP
	switch {
	case turn%3 == 0 && hurt:
		return Intent{Type: IntentDefend, Amount: s.DefendBlock + turn/3}
	case turn%4 == 0:
		return Intent{Type: IntentBuff, Kind: StatusStrength, Stacks: 2}
	default:
		return Intent{Type: IntentAttack, Amount: s.AttackDamage + turn/2}
	}
}
