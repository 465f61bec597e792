package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging combat events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 14 chars for alignment
	for len(phase) < 14 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewCombatStartEvent(enemies int) GameEvent {
	return GameEvent{
		Type:    EventCombatStart,
		Details: fmt.Sprintf("Combat started against %d enemy(ies)", enemies),
	}
}

func NewTurnStartEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Turn Start",
		Actor:   "Player",
		Type:    EventTurnStart,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewPhaseChangeEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewDrawEvent(turn int, phase string, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventDraw,
		Details: fmt.Sprintf("Player draws %d card(s)", count),
	}
}

func NewReshuffleEvent(turn int, phase string, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventReshuffle,
		Details: fmt.Sprintf("Discard pile (%d cards) shuffled into draw pile", count),
	}
}

func NewCardPlayedEvent(turn int, phase, card string, cost int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventCardPlayed,
		Card:    card,
		Details: fmt.Sprintf("Player plays %s (cost %d)", card, cost),
	}
}

func NewDamageEvent(turn int, phase, actor, target string, amount, blocked int) GameEvent {
	detail := fmt.Sprintf("%s takes %d damage", target, amount)
	if blocked > 0 {
		detail = fmt.Sprintf("%s takes %d damage (%d blocked)", target, amount, blocked)
	}
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventDamage,
		Details: detail,
	}
}

func NewBlockGainEvent(turn int, phase, actor string, amount, total int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventBlockGain,
		Details: fmt.Sprintf("%s gains %d block (total %d)", actor, amount, total),
	}
}

func NewStatusAppliedEvent(turn int, phase, target, status string, stacks int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   target,
		Type:    EventStatusApplied,
		Details: fmt.Sprintf("%s gains %d %s", target, stacks, status),
	}
}

func NewPoisonTickEvent(turn int, phase, target string, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   target,
		Type:    EventPoisonTick,
		Details: fmt.Sprintf("%s takes %d poison damage", target, amount),
	}
}

func NewBurnTickEvent(turn int, phase, target string, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   target,
		Type:    EventBurnTick,
		Details: fmt.Sprintf("%s takes %d burn damage", target, amount),
	}
}

func NewEnergyGainEvent(turn int, phase string, amount, total int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventEnergyGain,
		Details: fmt.Sprintf("Player gains %d energy (total %d)", amount, total),
	}
}

func NewHPLossEvent(turn int, phase, actor string, amount, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventHPLoss,
		Details: fmt.Sprintf("%s loses %d HP (%d remaining)", actor, amount, remaining),
	}
}

func NewDiscardEvent(turn int, phase string, count int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventDiscard,
		Details: fmt.Sprintf("Player discards %d card(s)", count),
	}
}

func NewExhaustEvent(turn int, phase, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventExhaust,
		Card:    card,
		Details: fmt.Sprintf("%s is exhausted", card),
	}
}

func NewUpgradeEvent(turn int, phase, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventUpgrade,
		Card:    card,
		Details: fmt.Sprintf("%s is upgraded in hand", card),
	}
}

func NewIntentSetEvent(turn int, phase, enemy, intent string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   enemy,
		Type:    EventIntentSet,
		Details: fmt.Sprintf("%s intends: %s", enemy, intent),
	}
}

func NewEnemyActionEvent(turn int, enemy, action string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Enemy Turn",
		Actor:   enemy,
		Type:    EventEnemyAction,
		Details: fmt.Sprintf("%s: %s", enemy, action),
	}
}

func NewEnemyDefeatedEvent(turn int, phase, enemy string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   enemy,
		Type:    EventEnemyDefeated,
		Details: fmt.Sprintf("%s is defeated!", enemy),
	}
}

func NewVictoryEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventVictory,
		Details: "=== VICTORY ===",
	}
}

func NewDefeatEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventDefeat,
		Details: "=== DEFEAT ===",
	}
}
