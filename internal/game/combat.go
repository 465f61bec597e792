package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/peterkuimelis/spirex/internal/log"
)

// Config holds everything needed to start a new combat.
type Config struct {
	Player  PlayerConfig
	Enemies []EnemyConfig

	Logger    log.EventLogger
	Seed      int64 // RNG seed (0 for random)
	NoShuffle bool  // skip the opening shuffle (for deterministic tests)
}

// Combat is a single encounter: one player against an ordered enemy roster.
// It is the sole unit of mutable state and performs no internal locking —
// callers serialize access themselves. All randomness (shuffles, intent
// variance) comes from one seeded source, so a combat's trajectory is
// replayable given the same seed and call sequence.
type Combat struct {
	Player  *Player
	Enemies []*Enemy // targeting index order; dead enemies stay in place, inert
	Phase   Phase
	Turn    int // 1-based player turn counter
	Logger  log.EventLogger

	rng *rand.Rand
}

// Result is returned by PlayCard and EndTurn: the events resolved by the
// call plus a fresh state snapshot.
type Result struct {
	Events []log.GameEvent
	State  Snapshot
}

// NewCombat constructs a combat, shuffles the draw pile, deals the opening
// hand, announces every enemy's first intent, and leaves the machine in the
// action phase.
func NewCombat(cfg Config) *Combat {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Combat{
		Player: newPlayer(cfg.Player),
		Phase:  PhaseNone,
		Logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
	for _, ec := range cfg.Enemies {
		c.Enemies = append(c.Enemies, newEnemy(ec))
	}

	if !cfg.NoShuffle {
		c.Player.Deck.Shuffle(c.rng)
	}

	c.Logger.Log(log.NewCombatStartEvent(len(c.Enemies)))

	// Intents are decided one step ahead: announce before turn 1 begins.
	for _, e := range c.Enemies {
		e.Intent = e.Selector.Next(e, 1, c.rng)
		c.Logger.Log(log.NewIntentSetEvent(0, c.Phase.String(), e.Name, e.Intent.String()))
	}

	c.startPlayerTurn()
	return c
}

// Over reports whether the combat reached an absorbing terminal state.
func (c *Combat) Over() bool {
	return c.Phase.Terminal()
}

// eventsSince returns the events logged after the given mark.
func (c *Combat) eventsSince(mark int) []log.GameEvent {
	return c.Logger.Events()[mark:]
}

func (c *Combat) result(mark int) *Result {
	return &Result{Events: c.eventsSince(mark), State: c.Snapshot()}
}

// checkTerminal transitions to Defeat or Victory if an HP total demands it.
// Called after every HP change; both outcomes are absorbing.
func (c *Combat) checkTerminal() bool {
	if c.Phase.Terminal() {
		return true
	}
	if c.Player.HP <= 0 {
		c.Phase = PhaseDefeat
		c.Logger.Log(log.NewDefeatEvent(c.Turn, c.Phase.String()))
		return true
	}
	for _, e := range c.Enemies {
		if e.Alive() {
			return false
		}
	}
	c.Phase = PhaseVictory
	c.Logger.Log(log.NewVictoryEvent(c.Turn, c.Phase.String()))
	return true
}

// --- Player turn start ---

func (c *Combat) startPlayerTurn() {
	c.Turn++
	c.Phase = PhaseTurnStart
	c.Logger.Log(log.NewTurnStartEvent(c.Turn))

	p := c.Player
	if !p.Barricade {
		p.Block = 0
	}

	if c.tickTurnStart(&p.Character) {
		return
	}

	p.Energy = p.MaxEnergy
	c.Logger.Log(log.NewEnergyGainEvent(c.Turn, c.Phase.String(), p.MaxEnergy, p.Energy))
	c.drawCards(p.HandSize)

	c.Phase = PhaseAction
}

// tickTurnStart runs a character's start-of-turn ledger effects: Poison
// damage then decrement, timed-debuff decay, Thorns expiry, and Demon Form
// Strength. Reports whether the combat ended during the tick.
func (c *Combat) tickTurnStart(ch *Character) bool {
	if poison := ch.Ledger.StacksOf(StatusPoison); poison > 0 {
		ch.TakeDirectDamage(poison)
		c.Logger.Log(log.NewPoisonTickEvent(c.Turn, c.Phase.String(), ch.Name, poison))
		ch.Ledger.Apply(StatusPoison, -1)
		if ch != &c.Player.Character && !ch.Alive() {
			c.Logger.Log(log.NewEnemyDefeatedEvent(c.Turn, c.Phase.String(), ch.Name))
		}
		if c.checkTerminal() {
			return true
		}
	}

	ch.Ledger.DecayTurnStart()

	if demon := ch.Ledger.StacksOf(StatusDemonForm); demon > 0 {
		gain := 2 * demon
		ch.Ledger.Apply(StatusStrength, gain)
		c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), ch.Name, StatusStrength.String(), gain))
	}
	return false
}

// tickTurnEnd runs a character's end-of-turn ledger effects: Burn damage
// (no self-decrement) and Metallicize block. Reports whether the combat
// ended during the tick.
func (c *Combat) tickTurnEnd(ch *Character) bool {
	if burn := ch.Ledger.StacksOf(StatusBurn); burn > 0 {
		ch.TakeDirectDamage(burn)
		c.Logger.Log(log.NewBurnTickEvent(c.Turn, c.Phase.String(), ch.Name, burn))
		if ch != &c.Player.Character && !ch.Alive() {
			c.Logger.Log(log.NewEnemyDefeatedEvent(c.Turn, c.Phase.String(), ch.Name))
		}
		if c.checkTerminal() {
			return true
		}
	}
	if metal := ch.Ledger.StacksOf(StatusMetallicize); metal > 0 {
		gained := ch.GainBlock(metal)
		c.Logger.Log(log.NewBlockGainEvent(c.Turn, c.Phase.String(), ch.Name, gained, ch.Block))
	}
	return false
}

func (c *Combat) drawCards(n int) {
	discardBefore := len(c.Player.Deck.DiscardPile)
	drawn, reshuffled := c.Player.Deck.Draw(n, c.rng)
	if reshuffled {
		c.Logger.Log(log.NewReshuffleEvent(c.Turn, c.Phase.String(), discardBefore))
	}
	if len(drawn) > 0 {
		c.Logger.Log(log.NewDrawEvent(c.Turn, c.Phase.String(), len(drawn)))
	}
}

// --- PlayCard ---

// PlayCard plays the hand card at handIndex. targetIndex selects the enemy
// for single-target cards and is ignored otherwise. A rejected play leaves
// the combat byte-for-byte unchanged.
func (c *Combat) PlayCard(handIndex, targetIndex int) (*Result, error) {
	if c.Over() {
		return nil, ErrCombatOver
	}
	p := c.Player
	if handIndex < 0 || handIndex >= len(p.Deck.Hand) {
		return nil, fmt.Errorf("%w: no card at hand index %d", ErrUnknownCard, handIndex)
	}
	card := p.Deck.Hand[handIndex]

	cost := card.EffectiveCost()
	if cost == CostX {
		cost = p.Energy
	}
	if cost > p.Energy {
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientEnergy, card.Name, cost, p.Energy)
	}

	var target *Enemy
	if card.NeedsTarget() {
		if targetIndex < 0 || targetIndex >= len(c.Enemies) {
			return nil, fmt.Errorf("%w: enemy index %d", ErrInvalidTarget, targetIndex)
		}
		target = c.Enemies[targetIndex]
		if !target.Alive() {
			return nil, fmt.Errorf("%w: %s is already dead", ErrInvalidTarget, target.Name)
		}
	}

	mark := len(c.Logger.Events())

	p.Energy -= cost
	p.Deck.RemoveFromHand(handIndex)
	c.Logger.Log(log.NewCardPlayedEvent(c.Turn, c.Phase.String(), card.Name, cost))

	c.resolveCard(card, target, cost)

	// The card leaves play whatever happened mid-resolution.
	if card.ExhaustOnPlay {
		p.Deck.Exhaust(card)
		c.Logger.Log(log.NewExhaustEvent(c.Turn, c.Phase.String(), card.Name))
	} else {
		p.Deck.Discard(card)
	}

	return c.result(mark), nil
}

// resolveCard applies a card's effects in the fixed declared order:
// self HP loss → damage → block → draw → energy gain → status grants.
// Resolution aborts as soon as the combat reaches a terminal state.
func (c *Combat) resolveCard(card *Card, target *Enemy, spent int) {
	p := c.Player

	if card.SelfHPLoss > 0 {
		p.TakeDirectDamage(card.SelfHPLoss)
		c.Logger.Log(log.NewHPLossEvent(c.Turn, c.Phase.String(), p.Name, card.SelfHPLoss, p.HP))
		if c.checkTerminal() {
			return
		}
	}

	if base := card.EffectiveDamage(); base > 0 {
		hits := 1
		if card.Cost == CostX {
			hits = spent
		}
		for hit := 0; hit < hits; hit++ {
			if c.attackEnemies(card, target, base) {
				return
			}
		}
	}

	if base := card.EffectiveBlock(); base > 0 {
		gained := p.GainBlock(base)
		c.Logger.Log(log.NewBlockGainEvent(c.Turn, c.Phase.String(), p.Name, gained, p.Block))
	}

	if card.Draw > 0 {
		c.drawCards(card.Draw)
	}

	if card.EnergyGain > 0 {
		p.Energy += card.EnergyGain
		c.Logger.Log(log.NewEnergyGainEvent(c.Turn, c.Phase.String(), card.EnergyGain, p.Energy))
	}

	for _, grant := range card.Applies {
		switch grant.Target {
		case TargetSelf:
			p.Ledger.Apply(grant.Kind, grant.Stacks)
			c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), p.Name, grant.Kind.String(), grant.Stacks))
		case TargetEnemy:
			if target != nil && target.Alive() {
				target.Ledger.Apply(grant.Kind, grant.Stacks)
				c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), target.Name, grant.Kind.String(), grant.Stacks))
			}
		case TargetAllEnemies:
			for _, e := range c.Enemies {
				if e.Alive() {
					e.Ledger.Apply(grant.Kind, grant.Stacks)
					c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), e.Name, grant.Kind.String(), grant.Stacks))
				}
			}
		}
	}

	if card.GrantsBarricade {
		p.Barricade = true
		c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), p.Name, "Barricade", 1))
	}

	if card.UpgradesHand {
		for i, h := range p.Deck.Hand {
			if !h.Upgraded {
				p.Deck.Hand[i] = h.WithUpgrade()
				c.Logger.Log(log.NewUpgradeEvent(c.Turn, c.Phase.String(), h.Name))
				break
			}
		}
	}
}

// attackEnemies runs one hit of a card through the full modifier chain
// against the chosen target, or every living enemy for multi-target cards.
// Reports whether the combat ended mid-hit.
func (c *Combat) attackEnemies(card *Card, target *Enemy, base int) bool {
	p := c.Player
	outgoing := p.Ledger.ModifyOutgoingDamage(base)

	var targets []*Enemy
	if card.MultiTarget {
		for _, e := range c.Enemies {
			if e.Alive() {
				targets = append(targets, e)
			}
		}
	} else if target != nil && target.Alive() {
		targets = append(targets, target)
	}

	for _, e := range targets {
		final := e.Ledger.ModifyIncomingDamage(outgoing)
		hpLoss, blocked := e.AbsorbAttack(final)
		c.Logger.Log(log.NewDamageEvent(c.Turn, c.Phase.String(), p.Name, e.Name, hpLoss, blocked))
		if !e.Alive() {
			c.Logger.Log(log.NewEnemyDefeatedEvent(c.Turn, c.Phase.String(), e.Name))
		} else if thorns := e.Ledger.StacksOf(StatusThorns); thorns > 0 {
			p.TakeDirectDamage(thorns)
			c.Logger.Log(log.NewDamageEvent(c.Turn, c.Phase.String(), e.Name, p.Name, thorns, 0))
		}
		if c.checkTerminal() {
			return true
		}
	}
	return false
}

// --- EndTurn ---

// EndTurn closes the action phase: end-of-turn ticks, hand discard, the
// whole enemy turn, and the start of the next player turn.
func (c *Combat) EndTurn() (*Result, error) {
	if c.Over() {
		return nil, ErrCombatOver
	}
	mark := len(c.Logger.Events())

	c.Phase = PhaseTurnEnd
	c.Logger.Log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))

	if c.tickTurnEnd(&c.Player.Character) {
		return c.result(mark), nil
	}

	if n := c.Player.Deck.DiscardHand(); n > 0 {
		c.Logger.Log(log.NewDiscardEvent(c.Turn, c.Phase.String(), n))
	}

	if c.enemyTurn() {
		return c.result(mark), nil
	}

	c.startPlayerTurn()
	return c.result(mark), nil
}

// enemyTurn executes every living enemy's intent in roster order, then the
// enemy-side end-of-turn ticks. Reports whether the combat ended.
func (c *Combat) enemyTurn() bool {
	c.Phase = PhaseEnemyTurn
	c.Logger.Log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))

	for _, e := range c.Enemies {
		if !e.Alive() {
			continue
		}

		if !e.Barricade {
			e.Block = 0
		}
		if c.tickTurnStart(&e.Character) {
			return true
		}
		if !e.Alive() {
			continue
		}

		if c.executeIntent(e) {
			return true
		}

		e.Intent = e.Selector.Next(e, c.Turn+1, c.rng)
		c.Logger.Log(log.NewIntentSetEvent(c.Turn, c.Phase.String(), e.Name, e.Intent.String()))
	}

	for _, e := range c.Enemies {
		if !e.Alive() {
			continue
		}
		if c.tickTurnEnd(&e.Character) {
			return true
		}
	}

	return c.checkTerminal()
}

// executeIntent performs an enemy's telegraphed action against the player.
// Attack damage runs through the same modifier chain as card damage.
func (c *Combat) executeIntent(e *Enemy) bool {
	p := c.Player
	c.Logger.Log(log.NewEnemyActionEvent(c.Turn, e.Name, e.Intent.String()))

	switch e.Intent.Type {
	case IntentAttack:
		outgoing := e.Ledger.ModifyOutgoingDamage(e.Intent.Amount)
		final := p.Ledger.ModifyIncomingDamage(outgoing)
		hpLoss, blocked := p.AbsorbAttack(final)
		c.Logger.Log(log.NewDamageEvent(c.Turn, c.Phase.String(), e.Name, p.Name, hpLoss, blocked))
		if c.checkTerminal() {
			return true
		}
		if thorns := p.Ledger.StacksOf(StatusThorns); thorns > 0 {
			e.TakeDirectDamage(thorns)
			c.Logger.Log(log.NewDamageEvent(c.Turn, c.Phase.String(), p.Name, e.Name, thorns, 0))
			if !e.Alive() {
				c.Logger.Log(log.NewEnemyDefeatedEvent(c.Turn, c.Phase.String(), e.Name))
			}
			if c.checkTerminal() {
				return true
			}
		}
	case IntentDefend:
		gained := e.GainBlock(e.Intent.Amount)
		c.Logger.Log(log.NewBlockGainEvent(c.Turn, c.Phase.String(), e.Name, gained, e.Block))
	case IntentBuff:
		e.Ledger.Apply(e.Intent.Kind, e.Intent.Stacks)
		c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), e.Name, e.Intent.Kind.String(), e.Intent.Stacks))
	case IntentDebuff:
		p.Ledger.Apply(e.Intent.Kind, e.Intent.Stacks)
		c.Logger.Log(log.NewStatusAppliedEvent(c.Turn, c.Phase.String(), p.Name, e.Intent.Kind.String(), e.Intent.Stacks))
	}
	return false
}
