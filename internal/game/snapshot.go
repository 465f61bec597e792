package game

// JSON views of combat state, shared by the web API and MCP front-ends.

// Snapshot is a full read-only view of a combat, taken after a mutation.
type Snapshot struct {
	Turn    int         `json:"turn"`
	Phase   string      `json:"phase"`
	Over    bool        `json:"over"`
	Player  PlayerView  `json:"player"`
	Enemies []EnemyView `json:"enemies"`
}

// PlayerView shows the player side: pools, piles, and the full hand.
type PlayerView struct {
	Name         string         `json:"name"`
	HP           int            `json:"hp"`
	MaxHP        int            `json:"max_hp"`
	Block        int            `json:"block"`
	Energy       int            `json:"energy"`
	MaxEnergy    int            `json:"max_energy"`
	Barricade    bool           `json:"barricade,omitempty"`
	Statuses     map[string]int `json:"statuses,omitempty"`
	Hand         []CardView     `json:"hand"`
	DrawCount    int            `json:"draw_count"`
	DiscardCount int            `json:"discard_count"`
	ExhaustCount int            `json:"exhaust_count"`
}

// CardView describes one hand slot.
type CardView struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"` // -1 means "X"
	Description string `json:"description"`
	Upgraded    bool   `json:"upgraded,omitempty"`
	NeedsTarget bool   `json:"needs_target,omitempty"`
}

// EnemyView shows one enemy slot, dead or alive, with its announced intent.
type EnemyView struct {
	Index    int            `json:"index"`
	Name     string         `json:"name"`
	HP       int            `json:"hp"`
	MaxHP    int            `json:"max_hp"`
	Block    int            `json:"block"`
	Alive    bool           `json:"alive"`
	Statuses map[string]int `json:"statuses,omitempty"`
	Intent   string         `json:"intent,omitempty"`
}

// Snapshot captures the current combat state. It copies everything it
// exposes, so the caller may hold it across further mutations.
func (c *Combat) Snapshot() Snapshot {
	p := c.Player
	pv := PlayerView{
		Name:         p.Name,
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		Block:        p.Block,
		Energy:       p.Energy,
		MaxEnergy:    p.MaxEnergy,
		Barricade:    p.Barricade,
		Statuses:     statusView(p.Ledger),
		Hand:         make([]CardView, 0, len(p.Deck.Hand)),
		DrawCount:    len(p.Deck.DrawPile),
		DiscardCount: len(p.Deck.DiscardPile),
		ExhaustCount: len(p.Deck.ExhaustPile),
	}
	for i, card := range p.Deck.Hand {
		pv.Hand = append(pv.Hand, CardView{
			Index:       i,
			Name:        card.Name,
			Type:        card.Type.String(),
			Cost:        card.EffectiveCost(),
			Description: card.Description,
			Upgraded:    card.Upgraded,
			NeedsTarget: card.NeedsTarget(),
		})
	}

	enemies := make([]EnemyView, 0, len(c.Enemies))
	for i, e := range c.Enemies {
		ev := EnemyView{
			Index:    i,
			Name:     e.Name,
			HP:       e.HP,
			MaxHP:    e.MaxHP,
			Block:    e.Block,
			Alive:    e.Alive(),
			Statuses: statusView(e.Ledger),
		}
		if e.Alive() {
			ev.Intent = e.Intent.String()
		}
		enemies = append(enemies, ev)
	}

	return Snapshot{
		Turn:    c.Turn,
		Phase:   c.Phase.String(),
		Over:    c.Over(),
		Player:  pv,
		Enemies: enemies,
	}
}

func statusView(l *Ledger) map[string]int {
	all := l.All()
	if len(all) == 0 {
		return nil
	}
	out := make(map[string]int, len(all))
	for kind, stacks := range all {
		out[kind.String()] = stacks
	}
	return out
}
