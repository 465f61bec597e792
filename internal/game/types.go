package game

import "fmt"

// --- Enums ---

type Phase int

const (
	PhaseNone Phase = iota
	PhaseTurnStart
	PhaseAction
	PhaseTurnEnd
	PhaseEnemyTurn
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseTurnStart:
		return "Turn Start"
	case PhaseAction:
		return "Action Phase"
	case PhaseTurnEnd:
		return "Turn End"
	case PhaseEnemyTurn:
		return "Enemy Turn"
	case PhaseVictory:
		return "Victory"
	case PhaseDefeat:
		return "Defeat"
	default:
		return "None"
	}
}

// Terminal reports whether the phase is an absorbing end state.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

type CardType int

const (
	CardTypeAttack CardType = iota
	CardTypeSkill
	CardTypePower
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeAttack:
		return "Attack"
	case CardTypeSkill:
		return "Skill"
	case CardTypePower:
		return "Power"
	default:
		return "Unknown"
	}
}

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	default:
		return "Unknown"
	}
}

// CostX marks a card whose cost is "spend all remaining energy".
const CostX = -1

// --- Status effects ---

type StatusKind int

const (
	StatusStrength StatusKind = iota
	StatusDexterity
	StatusVulnerable
	StatusWeak
	StatusFrail
	StatusPoison
	StatusBurn
	StatusMetallicize
	StatusDemonForm
	StatusThorns
)

func (k StatusKind) String() string {
	switch k {
	case StatusStrength:
		return "Strength"
	case StatusDexterity:
		return "Dexterity"
	case StatusVulnerable:
		return "Vulnerable"
	case StatusWeak:
		return "Weak"
	case StatusFrail:
		return "Frail"
	case StatusPoison:
		return "Poison"
	case StatusBurn:
		return "Burn"
	case StatusMetallicize:
		return "Metallicize"
	case StatusDemonForm:
		return "Demon Form"
	case StatusThorns:
		return "Thorns"
	default:
		return "Unknown"
	}
}

// StatusTarget selects who a card's status grant lands on.
type StatusTarget int

const (
	TargetSelf StatusTarget = iota
	TargetEnemy
	TargetAllEnemies
)

// StatusGrant is one entry in a card's ordered status-application list.
type StatusGrant struct {
	Kind   StatusKind
	Stacks int
	Target StatusTarget
}

// --- Card definition (static, from the registry) ---

// Card is an immutable card template. Piles hold references to templates;
// several hand slots may point at the same *Card.
type Card struct {
	Name        string
	Description string
	Type        CardType
	Rarity      Rarity

	Cost int // energy cost, or CostX

	// Effect fields, resolved in fixed order:
	// self HP loss → damage → block → draw → energy gain → status grants.
	SelfHPLoss int
	Damage     int
	Block      int
	Draw       int
	EnergyGain int
	Applies    []StatusGrant

	MultiTarget     bool // damage hits every living enemy
	ExhaustOnPlay   bool // goes to the exhaust pile instead of discard
	GrantsBarricade bool // sets the block-persistence flag on the player
	UpgradesHand    bool // upgrades the first unupgraded card left in hand

	// Upgrade variant
	Upgraded       bool
	UpgradeDamage  int
	UpgradeBlock   int
	UpgradeCostCut int
}

func (c *Card) String() string {
	return c.Name
}

// EffectiveCost returns the energy cost after upgrades. CostX passes through.
func (c *Card) EffectiveCost() int {
	if c.Cost == CostX {
		return CostX
	}
	cost := c.Cost
	if c.Upgraded {
		cost -= c.UpgradeCostCut
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}

// EffectiveDamage returns the base damage after upgrades.
func (c *Card) EffectiveDamage() int {
	if c.Upgraded {
		return c.Damage + c.UpgradeDamage
	}
	return c.Damage
}

// EffectiveBlock returns the base block after upgrades.
func (c *Card) EffectiveBlock() int {
	if c.Upgraded {
		return c.Block + c.UpgradeBlock
	}
	return c.Block
}

// NeedsTarget reports whether playing this card requires a living enemy index.
func (c *Card) NeedsTarget() bool {
	if c.MultiTarget {
		return false
	}
	if c.EffectiveDamage() > 0 {
		return true
	}
	for _, g := range c.Applies {
		if g.Target == TargetEnemy {
			return true
		}
	}
	return false
}

// WithUpgrade returns an upgraded copy of the template. The original is
// never mutated.
func (c *Card) WithUpgrade() *Card {
	up := *c
	up.Upgraded = true
	return &up
}

// --- Enemy intents ---

type IntentType int

const (
	IntentAttack IntentType = iota
	IntentDefend
	IntentBuff
	IntentDebuff
)

// Intent is an enemy's telegraphed next action, computed one step ahead.
type Intent struct {
	Type   IntentType
	Amount int        // damage for Attack, block for Defend
	Kind   StatusKind // for Buff/Debuff
	Stacks int        // for Buff/Debuff
}

func (i Intent) String() string {
	switch i.Type {
	case IntentAttack:
		return fmt.Sprintf("Attack %d", i.Amount)
	case IntentDefend:
		return fmt.Sprintf("Defend %d", i.Amount)
	case IntentBuff:
		return fmt.Sprintf("Buff: +%d %s", i.Stacks, i.Kind)
	case IntentDebuff:
		return fmt.Sprintf("Debuff: %d %s", i.Stacks, i.Kind)
	default:
		return "Unknown"
	}
}
