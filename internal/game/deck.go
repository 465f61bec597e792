package game

import "math/rand"

// Deck holds the player's four piles. All piles store references to card
// templates; the hand's order is significant for display only.
//
// Except for effects that explicitly create or remove cards, the total
// |draw|+|hand|+|discard|+|exhaust| is constant for the whole combat.
type Deck struct {
	DrawPile    []*Card // index 0 is the top
	Hand        []*Card
	DiscardPile []*Card
	ExhaustPile []*Card
}

// NewDeck puts all cards in the draw pile. The caller shuffles (or not,
// for deterministic tests) via Shuffle.
func NewDeck(cards []*Card) *Deck {
	d := &Deck{DrawPile: make([]*Card, len(cards))}
	copy(d.DrawPile, cards)
	return d
}

// Shuffle randomizes the draw pile using the combat's seeded source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.DrawPile), func(i, j int) {
		d.DrawPile[i], d.DrawPile[j] = d.DrawPile[j], d.DrawPile[i]
	})
}

// Draw moves up to n cards from the draw pile into the hand. When the draw
// pile empties mid-draw and the discard pile is non-empty, the whole discard
// pile is shuffled into the draw pile and drawing continues. When both are
// empty, drawing stops early: fewer than n cards drawn is a normal outcome,
// not an error. Returns the cards drawn and whether a reshuffle happened.
func (d *Deck) Draw(n int, rng *rand.Rand) (drawn []*Card, reshuffled bool) {
	for i := 0; i < n; i++ {
		if len(d.DrawPile) == 0 {
			if len(d.DiscardPile) == 0 {
				break
			}
			d.DrawPile = d.DiscardPile
			d.DiscardPile = nil
			d.Shuffle(rng)
			reshuffled = true
		}
		card := d.DrawPile[0]
		d.DrawPile = d.DrawPile[1:]
		d.Hand = append(d.Hand, card)
		drawn = append(drawn, card)
	}
	return drawn, reshuffled
}

// DiscardHand moves every hand card to the discard pile. Used at end of turn.
func (d *Deck) DiscardHand() int {
	n := len(d.Hand)
	d.DiscardPile = append(d.DiscardPile, d.Hand...)
	d.Hand = nil
	return n
}

// RemoveFromHand removes and returns the card at the given hand index.
func (d *Deck) RemoveFromHand(i int) *Card {
	card := d.Hand[i]
	d.Hand = append(d.Hand[:i], d.Hand[i+1:]...)
	return card
}

// Discard appends a card to the discard pile.
func (d *Deck) Discard(card *Card) {
	d.DiscardPile = append(d.DiscardPile, card)
}

// Exhaust appends a card to the exhaust pile. Exhausted cards are never
// reshuffled back.
func (d *Deck) Exhaust(card *Card) {
	d.ExhaustPile = append(d.ExhaustPile, card)
}

// AddToHand puts a generated card directly into the hand, bypassing the
// draw pile. It counts toward the total-card invariant from that point on.
func (d *Deck) AddToHand(card *Card) {
	d.Hand = append(d.Hand, card)
}

// TotalCards counts every pile, exhaust included.
func (d *Deck) TotalCards() int {
	return len(d.DrawPile) + len(d.Hand) + len(d.DiscardPile) + len(d.ExhaustPile)
}
