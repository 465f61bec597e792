package game

import (
	"testing"

	"github.com/peterkuimelis/spirex/internal/log"
)

// newTestCombat builds a deterministic combat: fixed seed, no opening
// shuffle, memory logger. With NoShuffle the draw pile keeps deck order,
// so index 0 is the first card drawn.
func newTestCombat(t *testing.T, player PlayerConfig, enemies ...EnemyConfig) (*Combat, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	c := NewCombat(Config{
		Player:    player,
		Enemies:   enemies,
		Logger:    logger,
		Seed:      1,
		NoShuffle: true,
	})
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		}
	})
	return c, logger
}

func mustPlay(t *testing.T, c *Combat, handIndex, targetIndex int) *Result {
	t.Helper()
	res, err := c.PlayCard(handIndex, targetIndex)
	if err != nil {
		t.Fatalf("PlayCard(%d, %d): %v", handIndex, targetIndex, err)
	}
	return res
}

func mustEndTurn(t *testing.T, c *Combat) *Result {
	t.Helper()
	res, err := c.EndTurn()
	if err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	return res
}

// defendOnly is an enemy that never attacks, for tests that care about the
// player side only.
func defendOnly(name string, hp int) EnemyConfig {
	return EnemyConfig{
		Name:     name,
		MaxHP:    hp,
		Selector: FixedSelector{Intent: Intent{Type: IntentDefend, Amount: 5}},
	}
}

func attacker(name string, hp, damage int) EnemyConfig {
	return EnemyConfig{Name: name, MaxHP: hp, Selector: AttackEvery(damage)}
}

func debuffer(name string, hp int, kind StatusKind, stacks int) EnemyConfig {
	return EnemyConfig{
		Name:     name,
		MaxHP:    hp,
		Selector: FixedSelector{Intent: Intent{Type: IntentDebuff, Kind: kind, Stacks: stacks}},
	}
}
