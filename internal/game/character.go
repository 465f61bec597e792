package game

// Character holds the combat state shared by the player and enemies: HP,
// block, and the status-effect ledger.
type Character struct {
	Name   string
	HP     int
	MaxHP  int
	Block  int
	Ledger *Ledger

	// Barricade is a flag, not a ledger stack: when set, block survives the
	// owner's start-of-turn reset.
	Barricade bool
}

func newCharacter(name string, maxHP int) Character {
	return Character{
		Name:   name,
		HP:     maxHP,
		MaxHP:  maxHP,
		Ledger: NewLedger(),
	}
}

// Alive reports whether the character can still act or be targeted.
func (c *Character) Alive() bool {
	return c.HP > 0
}

// GainBlock adds block through the Dexterity/Frail chain and returns the
// amount actually gained.
func (c *Character) GainBlock(base int) int {
	gained := c.Ledger.ModifyBlockGain(base)
	c.Block += gained
	return gained
}

// AbsorbAttack applies attack damage that has already passed through both
// modifier chains. Block absorbs first; the remainder comes off HP.
// Returns the HP lost and the amount blocked.
func (c *Character) AbsorbAttack(amount int) (hpLoss, blocked int) {
	if c.Block >= amount {
		c.Block -= amount
		return 0, amount
	}
	hpLoss = amount - c.Block
	blocked = c.Block
	c.Block = 0
	c.HP -= hpLoss
	if c.HP < 0 {
		c.HP = 0
	}
	return hpLoss, blocked
}

// TakeDirectDamage bypasses block and all modifiers. Used for Poison, Burn,
// and self-inflicted HP loss.
func (c *Character) TakeDirectDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
	return amount
}

// --- Player ---

// Player is the combatant with a deck and an energy pool.
type Player struct {
	Character
	Energy    int
	MaxEnergy int
	HandSize  int
	Deck      *Deck
}

// PlayerConfig describes the player side of a new combat. Zero fields fall
// back to the defaults: 80 HP, 3 energy, 5-card hand, starter deck.
type PlayerConfig struct {
	Name      string
	MaxHP     int
	MaxEnergy int
	HandSize  int
	Cards     []*Card
}

func newPlayer(cfg PlayerConfig) *Player {
	name := cfg.Name
	if name == "" {
		name = "Player"
	}
	maxHP := cfg.MaxHP
	if maxHP == 0 {
		maxHP = 80
	}
	maxEnergy := cfg.MaxEnergy
	if maxEnergy == 0 {
		maxEnergy = 3
	}
	handSize := cfg.HandSize
	if handSize == 0 {
		handSize = 5
	}
	cards := cfg.Cards
	if len(cards) == 0 {
		cards = StarterDeck()
	}
	return &Player{
		Character: newCharacter(name, maxHP),
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		HandSize:  handSize,
		Deck:      NewDeck(cards),
	}
}

// --- Enemy ---

// Enemy is a combatant driven by an intent selector. Enemies spend no
// energy and carry no deck.
type Enemy struct {
	Character
	Intent   Intent
	Selector IntentSelector
}

// EnemyConfig describes one enemy slot in the roster. A nil Selector gets
// the default scaling attack pattern.
type EnemyConfig struct {
	Name     string
	MaxHP    int
	Selector IntentSelector
}

func newEnemy(cfg EnemyConfig) *Enemy {
	sel := cfg.Selector
	if sel == nil {
		sel = NewPatternSelector(6, 8)
	}
	return &Enemy{
		Character: newCharacter(cfg.Name, cfg.MaxHP),
		Selector:  sel,
	}
}
