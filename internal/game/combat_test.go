package game

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/spirex/internal/log"
)

func TestOpeningState(t *testing.T) {
	c, logger := newTestCombat(t, PlayerConfig{}, attacker("Cultist", 20, 8))

	s := c.Snapshot()
	if s.Turn != 1 {
		t.Errorf("turn: got %d, want 1", s.Turn)
	}
	if s.Phase != "Action Phase" {
		t.Errorf("phase: got %q, want Action Phase", s.Phase)
	}
	if len(s.Player.Hand) != 5 {
		t.Errorf("opening hand: got %d cards, want 5", len(s.Player.Hand))
	}
	if s.Player.Energy != 3 {
		t.Errorf("energy: got %d, want 3", s.Player.Energy)
	}
	if s.Enemies[0].Intent != "Attack 8" {
		t.Errorf("intent: got %q, want Attack 8", s.Enemies[0].Intent)
	}
	if len(logger.EventsOfType(log.EventCombatStart)) != 1 {
		t.Error("expected exactly one CombatStart event")
	}
	if len(logger.EventsOfType(log.EventIntentSet)) != 1 {
		t.Error("expected one IntentSet event before turn 1")
	}
}

// TestTwoStrikesThenEnemyHits walks the canonical first two turns: two
// Strikes into a 20 HP enemy, end turn, enemy attacks for 8.
func TestTwoStrikesThenEnemyHits(t *testing.T) {
	c, logger := newTestCombat(t, PlayerConfig{}, attacker("Cultist", 20, 8))

	// Starter deck unshuffled: the first five draws are all Strikes.
	mustPlay(t, c, 0, 0)
	res := mustPlay(t, c, 0, 0)
	if res.State.Enemies[0].HP != 8 {
		t.Errorf("enemy HP after two Strikes: got %d, want 8", res.State.Enemies[0].HP)
	}
	if res.State.Player.Energy != 1 {
		t.Errorf("energy after two Strikes: got %d, want 1", res.State.Player.Energy)
	}

	res = mustEndTurn(t, c)
	s := res.State
	if s.Player.HP != 72 {
		t.Errorf("player HP after enemy attack: got %d, want 72", s.Player.HP)
	}
	if s.Turn != 2 {
		t.Errorf("turn: got %d, want 2", s.Turn)
	}
	if s.Player.Energy != 3 {
		t.Errorf("energy refilled: got %d, want 3", s.Player.Energy)
	}
	if s.Player.Block != 0 {
		t.Errorf("block reset: got %d, want 0", s.Player.Block)
	}
	if len(s.Player.Hand) != 5 {
		t.Errorf("turn 2 hand: got %d cards, want 5", len(s.Player.Hand))
	}

	// Only four Defends remained in the draw pile, so the turn 2 draw
	// reshuffles the discarded Strikes.
	if len(logger.EventsOfType(log.EventReshuffle)) != 1 {
		t.Error("expected a reshuffle during the turn 2 draw")
	}
}

func TestInsufficientEnergyLeavesStateUnchanged(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 2, Cards: []*Card{Bash(), HeavyBlade()}},
		defendOnly("Dummy", 30))

	mustPlay(t, c, 0, 0) // Bash, cost 2, leaves 1 energy
	before := c.Snapshot()

	_, err := c.PlayCard(0, 0) // Heavy Blade costs 2
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("got %v, want ErrInsufficientEnergy", err)
	}

	after := c.Snapshot()
	if after.Player.Energy != before.Player.Energy {
		t.Errorf("energy changed on rejected play: %d → %d", before.Player.Energy, after.Player.Energy)
	}
	if len(after.Player.Hand) != len(before.Player.Hand) {
		t.Errorf("hand changed on rejected play: %d → %d", len(before.Player.Hand), len(after.Player.Hand))
	}
	if after.Enemies[0].HP != before.Enemies[0].HP {
		t.Errorf("enemy HP changed on rejected play: %d → %d", before.Enemies[0].HP, after.Enemies[0].HP)
	}
}

func TestInvalidTargetRejected(t *testing.T) {
	c, _ := newTestCombat(t, PlayerConfig{}, attacker("Cultist", 20, 8))

	if _, err := c.PlayCard(0, 5); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("out-of-range target: got %v, want ErrInvalidTarget", err)
	}
	if _, err := c.PlayCard(99, 0); !errors.Is(err, ErrUnknownCard) {
		t.Errorf("bad hand index: got %v, want ErrUnknownCard", err)
	}
}

func TestDeadEnemyIsNotATarget(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 3, Cards: []*Card{Strike(), Strike(), Strike()}},
		attacker("Frail One", 5, 3),
		attacker("Cultist", 20, 8))

	mustPlay(t, c, 0, 0) // kills the 5 HP enemy
	if _, err := c.PlayCard(0, 0); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("targeting a dead enemy: got %v, want ErrInvalidTarget", err)
	}
	// The living enemy is still a valid target.
	res := mustPlay(t, c, 0, 1)
	if res.State.Enemies[1].HP != 14 {
		t.Errorf("second enemy HP: got %d, want 14", res.State.Enemies[1].HP)
	}
}

func TestBashAppliesVulnerable(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 2, Cards: []*Card{Bash(), Strike()}},
		defendOnly("Dummy", 30))

	mustPlay(t, c, 0, 0) // Bash: 8 damage, then 2 Vulnerable
	res := mustPlay(t, c, 0, 0)

	// Strike into Vulnerable: 6*1.5 = 9. 30-8-9 = 13.
	if res.State.Enemies[0].HP != 13 {
		t.Errorf("enemy HP: got %d, want 13", res.State.Enemies[0].HP)
	}
	if res.State.Enemies[0].Statuses["Vulnerable"] != 2 {
		t.Errorf("Vulnerable stacks: got %d, want 2", res.State.Enemies[0].Statuses["Vulnerable"])
	}
}

func TestBlockAbsorbsBeforeHP(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Defend(), Defend()}},
		attacker("Cultist", 20, 8))

	res := mustPlay(t, c, 0, 0)
	if res.State.Player.Block != 5 {
		t.Errorf("block: got %d, want 5", res.State.Player.Block)
	}
	res = mustEndTurn(t, c)
	if res.State.Player.HP != 77 {
		t.Errorf("player HP: got %d, want 77 (5 of 8 blocked)", res.State.Player.HP)
	}
	if res.State.Player.Block != 0 {
		t.Errorf("block after turn start: got %d, want 0", res.State.Player.Block)
	}
}

func TestCleaveHitsAllEnemies(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Cleave()}},
		defendOnly("Left", 30), defendOnly("Right", 30))

	res := mustPlay(t, c, 0, -1)
	for i, e := range res.State.Enemies {
		if e.HP != 22 {
			t.Errorf("enemy %d HP: got %d, want 22", i, e.HP)
		}
	}
}

func TestWhirlwindSpendsAllEnergy(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Whirlwind()}},
		defendOnly("Left", 30), defendOnly("Right", 30))

	res := mustPlay(t, c, 0, -1)
	if res.State.Player.Energy != 0 {
		t.Errorf("energy after X-cost: got %d, want 0", res.State.Player.Energy)
	}
	// 3 energy → 3 hits of 5 on each of two enemies.
	for i, e := range res.State.Enemies {
		if e.HP != 15 {
			t.Errorf("enemy %d HP: got %d, want 15", i, e.HP)
		}
	}
	if n := len(logger.EventsOfType(log.EventDamage)); n != 6 {
		t.Errorf("damage events: got %d, want 6", n)
	}
}

func TestWhirlwindStopsAtVictory(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Whirlwind()}},
		defendOnly("Frail One", 5))

	res := mustPlay(t, c, 0, -1)
	if res.State.Phase != "Victory" {
		t.Fatalf("phase: got %q, want Victory", res.State.Phase)
	}
	// The first of three hits kills; the rest must not resolve.
	if n := len(logger.EventsOfType(log.EventDamage)); n != 1 {
		t.Errorf("damage events: got %d, want 1", n)
	}
}

func TestOfferingTradesHPForResources(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Offering(), Strike(), Defend(), Defend()}},
		defendOnly("Dummy", 30))

	res := mustPlay(t, c, 0, -1)
	s := res.State
	if s.Player.HP != 74 {
		t.Errorf("HP: got %d, want 74", s.Player.HP)
	}
	if s.Player.Energy != 5 {
		t.Errorf("energy: got %d, want 5", s.Player.Energy)
	}
	if len(s.Player.Hand) != 3 {
		t.Errorf("hand after draw 3: got %d, want 3", len(s.Player.Hand))
	}
	if s.Player.ExhaustCount != 1 {
		t.Errorf("exhaust pile: got %d, want 1", s.Player.ExhaustCount)
	}
}

func TestSelfHPLossCanEndTheCombat(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{MaxHP: 6, HandSize: 1, Cards: []*Card{Offering(), Strike(), Strike(), Strike()}},
		defendOnly("Dummy", 30))

	res := mustPlay(t, c, 0, -1)
	if res.State.Phase != "Defeat" {
		t.Fatalf("phase: got %q, want Defeat", res.State.Phase)
	}
	// Resolution aborts at the terminal check: no draw, no energy gain.
	if len(logger.EventsOfType(log.EventEnergyGain)) != 1 { // only the turn 1 refill
		t.Error("energy gain resolved after defeat")
	}
	if _, err := c.PlayCard(0, 0); !errors.Is(err, ErrCombatOver) {
		t.Errorf("post-defeat play: got %v, want ErrCombatOver", err)
	}
	if _, err := c.EndTurn(); !errors.Is(err, ErrCombatOver) {
		t.Errorf("post-defeat end turn: got %v, want ErrCombatOver", err)
	}
}

func TestVictoryAbsorbs(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Strike()}},
		attacker("Frail One", 5, 3))

	res := mustPlay(t, c, 0, 0)
	if !res.State.Over || res.State.Phase != "Victory" {
		t.Fatalf("state: over=%v phase=%q, want Victory", res.State.Over, res.State.Phase)
	}
	if _, err := c.EndTurn(); !errors.Is(err, ErrCombatOver) {
		t.Errorf("post-victory end turn: got %v, want ErrCombatOver", err)
	}
}

func TestBarricadeKeepsBlockAcrossTurns(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 2, Cards: []*Card{Barricade(), Defend(), Defend(), Defend(), Defend()}},
		attacker("Cultist", 50, 8))

	mustPlay(t, c, 0, -1) // Barricade, all 3 energy
	mustEndTurn(t, c)     // enemy hits for 8 → 72

	mustPlay(t, c, 0, -1) // Defend
	res := mustPlay(t, c, 0, -1)
	if res.State.Player.Block != 10 {
		t.Fatalf("block: got %d, want 10", res.State.Player.Block)
	}

	res = mustEndTurn(t, c) // enemy hits 8 into 10 block
	if res.State.Player.Block != 2 {
		t.Errorf("block survives turn start with Barricade: got %d, want 2", res.State.Player.Block)
	}
	if res.State.Player.HP != 72 {
		t.Errorf("player HP: got %d, want 72", res.State.Player.HP)
	}
}

func TestMetallicizeBlocksAtTurnEnd(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Metallicize(), Defend(), Defend()}},
		attacker("Cultist", 50, 8))

	mustPlay(t, c, 0, -1)
	res := mustEndTurn(t, c)
	// End-of-turn Metallicize block lands before the enemy attack: 8-3 = 5.
	if res.State.Player.HP != 75 {
		t.Errorf("player HP: got %d, want 75", res.State.Player.HP)
	}
}

func TestDemonFormGrantsStrengthEachTurn(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{DemonForm(), Strike(), Strike(), Strike()}},
		defendOnly("Dummy", 50))

	mustPlay(t, c, 0, -1) // Demon Form
	res := mustEndTurn(t, c)
	if res.State.Player.Statuses["Strength"] != 2 {
		t.Fatalf("Strength at turn 2: got %d, want 2", res.State.Player.Statuses["Strength"])
	}

	res = mustPlay(t, c, 0, 0) // Strike at +2 Strength
	if res.State.Enemies[0].HP != 42 {
		t.Errorf("enemy HP: got %d, want 42 (6+2 damage)", res.State.Enemies[0].HP)
	}

	res = mustEndTurn(t, c)
	if res.State.Player.Statuses["Strength"] != 4 {
		t.Errorf("Strength at turn 3: got %d, want 4", res.State.Player.Statuses["Strength"])
	}
}

func TestPoisonTicksAtTurnStartThroughBlock(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Defend(), Defend()}},
		debuffer("Snake", 20, StatusPoison, 3))

	mustPlay(t, c, 0, -1) // 5 block, irrelevant to poison
	res := mustEndTurn(t, c)
	// Turn 2 start: 3 poison damage straight to HP, then one stack falls off.
	if res.State.Player.HP != 77 {
		t.Errorf("player HP: got %d, want 77", res.State.Player.HP)
	}
	if res.State.Player.Statuses["Poison"] != 2 {
		t.Errorf("Poison stacks: got %d, want 2", res.State.Player.Statuses["Poison"])
	}
	ticks := logger.EventsOfType(log.EventPoisonTick)
	if len(ticks) != 1 {
		t.Fatalf("poison ticks: got %d, want 1", len(ticks))
	}
}

func TestBurnTicksAtTurnEndAndPersists(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{},
		debuffer("Torchhead", 20, StatusBurn, 2))

	mustEndTurn(t, c) // enemy applies Burn 2; no player tick yet
	res := mustEndTurn(t, c)
	// Turn 2 end: 2 burn damage; the stack never self-decrements, and the
	// enemy piles on 2 more.
	if res.State.Player.HP != 78 {
		t.Errorf("player HP: got %d, want 78", res.State.Player.HP)
	}
	if res.State.Player.Statuses["Burn"] != 4 {
		t.Errorf("Burn stacks: got %d, want 4", res.State.Player.Statuses["Burn"])
	}
	if len(logger.EventsOfType(log.EventBurnTick)) != 1 {
		t.Error("expected exactly one burn tick so far")
	}
}

func TestFlameBarrierRetaliates(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{FlameBarrier(), Defend()}},
		attacker("Cultist", 20, 8))

	mustPlay(t, c, 0, -1) // 12 block, Thorns 4
	res := mustEndTurn(t, c)
	s := res.State
	if s.Player.HP != 80 {
		t.Errorf("player HP: got %d, want 80 (attack fully blocked)", s.Player.HP)
	}
	if s.Enemies[0].HP != 16 {
		t.Errorf("enemy HP after retaliation: got %d, want 16", s.Enemies[0].HP)
	}
	// Thorns lasts until the player's next turn starts, then expires.
	if _, ok := s.Player.Statuses["Thorns"]; ok {
		t.Error("Thorns should have expired at turn start")
	}
}

func TestArmamentsUpgradesACardInHand(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{HandSize: 2, Cards: []*Card{Armaments(), Strike()}},
		defendOnly("Dummy", 30))

	res := mustPlay(t, c, 0, -1)
	if !res.State.Player.Hand[0].Upgraded {
		t.Fatal("Strike in hand should be upgraded")
	}
	if len(logger.EventsOfType(log.EventUpgrade)) != 1 {
		t.Error("expected one Upgrade event")
	}

	res = mustPlay(t, c, 0, 0) // Strike+ deals 9
	if res.State.Enemies[0].HP != 21 {
		t.Errorf("enemy HP: got %d, want 21", res.State.Enemies[0].HP)
	}
}

func TestPoisonOnEnemyTicksAtItsTurnStart(t *testing.T) {
	c, logger := newTestCombat(t,
		PlayerConfig{HandSize: 2, Cards: []*Card{DeadlyPoison(), Neutralize()}},
		defendOnly("Dummy", 4))

	mustPlay(t, c, 0, 0) // 5 Poison on a 4 HP enemy
	res := mustEndTurn(t, c)
	// The enemy's own start-of-turn tick kills it before it can act.
	if res.State.Phase != "Victory" {
		t.Fatalf("phase: got %q, want Victory", res.State.Phase)
	}
	if len(logger.EventsOfType(log.EventEnemyAction)) != 0 {
		t.Error("a poison-killed enemy should never act")
	}
	if len(logger.EventsOfType(log.EventPoisonTick)) != 1 {
		t.Error("expected one poison tick")
	}
}

func TestNeutralizeWeakensEnemyAttack(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{HandSize: 1, Cards: []*Card{Neutralize(), Defend()}},
		attacker("Cultist", 20, 8))

	mustPlay(t, c, 0, 0) // 3 damage, 2 Weak
	res := mustEndTurn(t, c)
	// One Weak stack falls off at the enemy's own turn start; the remaining
	// stack cuts the 8 attack to 6.
	if res.State.Player.HP != 74 {
		t.Errorf("player HP: got %d, want 74", res.State.Player.HP)
	}
}

func TestEnemyBuffRaisesItsDamage(t *testing.T) {
	c, _ := newTestCombat(t,
		PlayerConfig{},
		EnemyConfig{Name: "Gremlin", MaxHP: 30, Selector: FixedSelector{
			Intent: Intent{Type: IntentBuff, Kind: StatusStrength, Stacks: 2},
		}})

	res := mustEndTurn(t, c)
	if res.State.Enemies[0].Statuses["Strength"] != 2 {
		t.Errorf("enemy Strength: got %d, want 2", res.State.Enemies[0].Statuses["Strength"])
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() string {
		logger := log.NewMemoryLogger()
		c := NewCombat(Config{
			Enemies: []EnemyConfig{{Name: "Cultist", MaxHP: 40}},
			Logger:  logger,
			Seed:    42,
		})
		for i := 0; i < 3 && !c.Over(); i++ {
			if _, err := c.PlayCard(0, 0); err != nil {
				t.Fatalf("play: %v", err)
			}
			if _, err := c.EndTurn(); err != nil {
				t.Fatalf("end turn: %v", err)
			}
		}
		return log.FormatAll(logger.Events())
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("same seed produced different histories:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}
}

func TestLookupCardUnknown(t *testing.T) {
	if _, err := LookupCard("Ascender's Bane"); !errors.Is(err, ErrUnknownCard) {
		t.Errorf("got %v, want ErrUnknownCard", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	c, _ := newTestCombat(t, PlayerConfig{}, attacker("Cultist", 20, 8))
	before := c.Snapshot()
	mustPlay(t, c, 0, 0)
	if before.Enemies[0].HP != 20 {
		t.Errorf("snapshot mutated by later play: enemy HP %d", before.Enemies[0].HP)
	}
}
