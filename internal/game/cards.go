package game

// Card constructors. Each returns a fresh template; decks share the
// returned pointer, they never copy or mutate it.

// Strike — basic attack.
func Strike() *Card {
	return &Card{
		Name:          "Strike",
		Description:   "Deal 6 damage.",
		Type:          CardTypeAttack,
		Rarity:        RarityCommon,
		Cost:          1,
		Damage:        6,
		UpgradeDamage: 3,
	}
}

// Bash — attack that applies Vulnerable.
func Bash() *Card {
	return &Card{
		Name:          "Bash",
		Description:   "Deal 8 damage. Apply 2 Vulnerable.",
		Type:          CardTypeAttack,
		Rarity:        RarityCommon,
		Cost:          2,
		Damage:        8,
		Applies:       []StatusGrant{{Kind: StatusVulnerable, Stacks: 2, Target: TargetEnemy}},
		UpgradeDamage: 2,
	}
}

// Cleave — hits every living enemy.
func Cleave() *Card {
	return &Card{
		Name:          "Cleave",
		Description:   "Deal 8 damage to ALL enemies.",
		Type:          CardTypeAttack,
		Rarity:        RarityCommon,
		Cost:          1,
		Damage:        8,
		MultiTarget:   true,
		UpgradeDamage: 3,
	}
}

// HeavyBlade — expensive single hit.
func HeavyBlade() *Card {
	return &Card{
		Name:          "Heavy Blade",
		Description:   "Deal 14 damage.",
		Type:          CardTypeAttack,
		Rarity:        RarityUncommon,
		Cost:          2,
		Damage:        14,
		UpgradeDamage: 4,
	}
}

// Whirlwind — X-cost: spends all energy and hits all enemies once per
// energy spent.
func Whirlwind() *Card {
	return &Card{
		Name:          "Whirlwind",
		Description:   "Deal 5 damage to ALL enemies X times.",
		Type:          CardTypeAttack,
		Rarity:        RarityUncommon,
		Cost:          CostX,
		Damage:        5,
		MultiTarget:   true,
		UpgradeDamage: 2,
	}
}

// Defend — basic block.
func Defend() *Card {
	return &Card{
		Name:         "Defend",
		Description:  "Gain 5 Block.",
		Type:         CardTypeSkill,
		Rarity:       RarityCommon,
		Cost:         1,
		Block:        5,
		UpgradeBlock: 3,
	}
}

// ShrugItOff — block plus a draw.
func ShrugItOff() *Card {
	return &Card{
		Name:         "Shrug It Off",
		Description:  "Gain 8 Block. Draw 1 card.",
		Type:         CardTypeSkill,
		Rarity:       RarityCommon,
		Cost:         1,
		Block:        8,
		Draw:         1,
		UpgradeBlock: 3,
	}
}

// Armaments — block plus an in-hand upgrade.
func Armaments() *Card {
	return &Card{
		Name:         "Armaments",
		Description:  "Gain 5 Block. Upgrade a card in your hand.",
		Type:         CardTypeSkill,
		Rarity:       RarityUncommon,
		Cost:         1,
		Block:        5,
		UpgradesHand: true,
		UpgradeBlock: 2,
	}
}

// FlameBarrier — block plus retaliation until the next turn starts.
func FlameBarrier() *Card {
	return &Card{
		Name:         "Flame Barrier",
		Description:  "Gain 12 Block. When attacked, deal 4 damage back.",
		Type:         CardTypeSkill,
		Rarity:       RarityUncommon,
		Cost:         2,
		Block:        12,
		Applies:      []StatusGrant{{Kind: StatusThorns, Stacks: 4, Target: TargetSelf}},
		UpgradeBlock: 4,
	}
}

// Impervious — a wall of block.
func Impervious() *Card {
	return &Card{
		Name:         "Impervious",
		Description:  "Gain 30 Block.",
		Type:         CardTypeSkill,
		Rarity:       RarityRare,
		Cost:         2,
		Block:        30,
		UpgradeBlock: 10,
	}
}

// Offering — pay HP for energy and cards; exhausts.
func Offering() *Card {
	return &Card{
		Name:          "Offering",
		Description:   "Lose 6 HP. Gain 2 Energy. Draw 3 cards. Exhaust.",
		Type:          CardTypeSkill,
		Rarity:        RarityRare,
		Cost:          0,
		SelfHPLoss:    6,
		EnergyGain:    2,
		Draw:          3,
		ExhaustOnPlay: true,
	}
}

// Neutralize — cheap attack that saps the enemy's damage.
func Neutralize() *Card {
	return &Card{
		Name:          "Neutralize",
		Description:   "Deal 3 damage. Apply 2 Weak.",
		Type:          CardTypeAttack,
		Rarity:        RarityCommon,
		Cost:          0,
		Damage:        3,
		Applies:       []StatusGrant{{Kind: StatusWeak, Stacks: 2, Target: TargetEnemy}},
		UpgradeDamage: 1,
	}
}

// DeadlyPoison — pure damage-over-time.
func DeadlyPoison() *Card {
	return &Card{
		Name:        "Deadly Poison",
		Description: "Apply 5 Poison.",
		Type:        CardTypeSkill,
		Rarity:      RarityUncommon,
		Cost:        1,
		Applies:     []StatusGrant{{Kind: StatusPoison, Stacks: 5, Target: TargetEnemy}},
	}
}

// Ignite — attack that leaves the target burning at its own turn's end.
func Ignite() *Card {
	return &Card{
		Name:          "Ignite",
		Description:   "Deal 4 damage. Apply 2 Burn.",
		Type:          CardTypeAttack,
		Rarity:        RarityUncommon,
		Cost:          1,
		Damage:        4,
		Applies:       []StatusGrant{{Kind: StatusBurn, Stacks: 2, Target: TargetEnemy}},
		UpgradeDamage: 2,
	}
}

// Metallicize — passive block every end of turn.
func Metallicize() *Card {
	return &Card{
		Name:        "Metallicize",
		Description: "At the end of your turn, gain 3 Block.",
		Type:        CardTypePower,
		Rarity:      RarityUncommon,
		Cost:        1,
		Applies:     []StatusGrant{{Kind: StatusMetallicize, Stacks: 3, Target: TargetSelf}},
	}
}

// Barricade — block persists across turns.
func Barricade() *Card {
	return &Card{
		Name:            "Barricade",
		Description:     "Block is not removed at the start of your turn.",
		Type:            CardTypePower,
		Rarity:          RarityRare,
		Cost:            3,
		GrantsBarricade: true,
		UpgradeCostCut:  1,
	}
}

// DemonForm — scaling Strength every turn.
func DemonForm() *Card {
	return &Card{
		Name:        "Demon Form",
		Description: "At the start of your turn, gain 2 Strength.",
		Type:        CardTypePower,
		Rarity:      RarityRare,
		Cost:        3,
		Applies:     []StatusGrant{{Kind: StatusDemonForm, Stacks: 1, Target: TargetSelf}},
	}
}
