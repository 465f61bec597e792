package log

// EventType enumerates all observable combat events.
type EventType int

const (
	EventCombatStart EventType = iota
	EventTurnStart
	EventPhaseChange
	EventDraw
	EventReshuffle
	EventCardPlayed
	EventDamage
	EventBlockGain
	EventStatusApplied
	EventPoisonTick
	EventBurnTick
	EventEnergyGain
	EventHPLoss
	EventDiscard
	EventExhaust
	EventUpgrade
	EventIntentSet
	EventEnemyAction
	EventEnemyDefeated
	EventVictory
	EventDefeat
)

func (e EventType) String() string {
	switch e {
	case EventCombatStart:
		return "CombatStart"
	case EventTurnStart:
		return "TurnStart"
	case EventPhaseChange:
		return "PhaseChange"
	case EventDraw:
		return "Draw"
	case EventReshuffle:
		return "Reshuffle"
	case EventCardPlayed:
		return "CardPlayed"
	case EventDamage:
		return "Damage"
	case EventBlockGain:
		return "BlockGain"
	case EventStatusApplied:
		return "StatusApplied"
	case EventPoisonTick:
		return "PoisonTick"
	case EventBurnTick:
		return "BurnTick"
	case EventEnergyGain:
		return "EnergyGain"
	case EventHPLoss:
		return "HPLoss"
	case EventDiscard:
		return "Discard"
	case EventExhaust:
		return "Exhaust"
	case EventUpgrade:
		return "Upgrade"
	case EventIntentSet:
		return "IntentSet"
	case EventEnemyAction:
		return "EnemyAction"
	case EventEnemyDefeated:
		return "EnemyDefeated"
	case EventVictory:
		return "Victory"
	case EventDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a combat.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Action Phase")
	Actor   string    // who caused the event ("Player", an enemy name, or "")
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
