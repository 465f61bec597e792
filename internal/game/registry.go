package game

import "fmt"

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Strike":        Strike,
	"Bash":          Bash,
	"Cleave":        Cleave,
	"Heavy Blade":   HeavyBlade,
	"Whirlwind":     Whirlwind,
	"Defend":        Defend,
	"Shrug It Off":  ShrugItOff,
	"Armaments":     Armaments,
	"Flame Barrier": FlameBarrier,
	"Impervious":    Impervious,
	"Offering":      Offering,
	"Neutralize":    Neutralize,
	"Deadly Poison": DeadlyPoison,
	"Ignite":        Ignite,
	"Metallicize":   Metallicize,
	"Barricade":     Barricade,
	"Demon Form":    DemonForm,
}

// LookupCard looks up a card template by name.
func LookupCard(name string) (*Card, error) {
	ctor, ok := CardRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}
	return ctor(), nil
}

// StarterDeck returns the starting card pool: 5 Strikes and 4 Defends.
func StarterDeck() []*Card {
	deck := make([]*Card, 0, 9)
	for i := 0; i < 5; i++ {
		deck = append(deck, Strike())
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Defend())
	}
	return deck
}
