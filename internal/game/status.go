package game

// stackRule controls how reapplying an already-present status combines with
// the existing entry.
type stackRule int

const (
	stackAdditive stackRule = iota
	stackRefresh            // duration reset: keep the larger stack count
)

// decaysAtTurnStart lists the timed effects that lose one stack at the
// owner's start-of-turn tick. Poison is handled separately (damage first,
// then decrement); Burn never decays on its own.
var decaysAtTurnStart = map[StatusKind]bool{
	StatusVulnerable: true,
	StatusWeak:       true,
	StatusFrail:      true,
}

// expiresAtTurnStart lists until-start-of-next-turn effects: the whole entry
// is dropped at the owner's next start-of-turn tick, whatever its stacks.
var expiresAtTurnStart = map[StatusKind]bool{
	StatusThorns: true,
}

// stackRules maps each kind to its reapplication behavior. Most of the base
// set stacks additively; refresh-flagged effects reset instead of piling up.
var stackRules = map[StatusKind]stackRule{
	StatusThorns: stackRefresh,
}

// Ledger tracks a character's active status effects by stack count.
// An entry with zero stacks is never stored: removing the last stack
// removes the entry.
type Ledger struct {
	stacks map[StatusKind]int
}

func NewLedger() *Ledger {
	return &Ledger{stacks: make(map[StatusKind]int)}
}

// Apply adds stacks of a status effect. Negative deltas remove stacks;
// the entry disappears when stacks reach zero.
func (l *Ledger) Apply(kind StatusKind, stacks int) {
	if stacks == 0 {
		return
	}
	cur, ok := l.stacks[kind]
	if ok && stackRules[kind] == stackRefresh && stacks > 0 {
		if stacks > cur {
			l.stacks[kind] = stacks
		}
		return
	}
	next := cur + stacks
	if next <= 0 {
		delete(l.stacks, kind)
		return
	}
	l.stacks[kind] = next
}

// StacksOf returns the stack count for a kind, or 0 if absent.
func (l *Ledger) StacksOf(kind StatusKind) int {
	return l.stacks[kind]
}

// Has reports whether the effect is present at any stack count.
func (l *Ledger) Has(kind StatusKind) bool {
	_, ok := l.stacks[kind]
	return ok
}

// Remove clears an effect entirely (external cleanse).
func (l *Ledger) Remove(kind StatusKind) {
	delete(l.stacks, kind)
}

// All returns a copy of the active effects.
func (l *Ledger) All() map[StatusKind]int {
	out := make(map[StatusKind]int, len(l.stacks))
	for k, v := range l.stacks {
		out[k] = v
	}
	return out
}

// DecayTurnStart decrements the timed debuffs by one stack each and drops
// until-start-of-next-turn effects entirely. Called at the owner's
// start-of-turn tick, after Poison has dealt its damage.
func (l *Ledger) DecayTurnStart() {
	for kind := range decaysAtTurnStart {
		if l.Has(kind) {
			l.Apply(kind, -1)
		}
	}
	for kind := range expiresAtTurnStart {
		delete(l.stacks, kind)
	}
}

// --- Damage and block modifier chain ---
//
// The ordering is fixed and not commutative-safe: each multiplicative step
// truncates toward zero independently. Outgoing damage scales by Strength
// then Weak on the attacker; incoming damage scales by Vulnerable on the
// defender, after the attacker-side modifiers and before block absorption.

// ModifyOutgoingDamage applies the attacker-side chain: flat Strength add,
// then ×0.75 floored if Weak.
func (l *Ledger) ModifyOutgoingDamage(base int) int {
	dmg := base + l.StacksOf(StatusStrength)
	if l.Has(StatusWeak) {
		dmg = dmg * 3 / 4
	}
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

// ModifyIncomingDamage applies the defender-side chain: ×1.5 floored if
// Vulnerable. Block absorption happens after this step, in the character.
func (l *Ledger) ModifyIncomingDamage(base int) int {
	dmg := base
	if l.Has(StatusVulnerable) {
		dmg = dmg * 3 / 2
	}
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

// ModifyBlockGain applies the block chain: flat Dexterity add, then ×0.75
// floored if Frail.
func (l *Ledger) ModifyBlockGain(base int) int {
	blk := base + l.StacksOf(StatusDexterity)
	if l.Has(StatusFrail) {
		blk = blk * 3 / 4
	}
	if blk < 0 {
		blk = 0
	}
	return blk
}
