package game

import (
	"fmt"
	"math/rand/v2"
)

// Deck is a shuffled, finite, ordered sequence of cards. Index 0 is the top
// of the deck. Each deck owns a trial-scoped random source so that trials
// stay independent under parallel execution.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck copies the given cards into a fresh deck and shuffles it with the
// provided random source. The input slice is never mutated.
func NewDeck(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{
		cards: append([]Card(nil), cards...),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the deck order.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Size returns the number of cards remaining.
func (d *Deck) Size() int {
	return len(d.cards)
}

// DrawN removes and returns the top n cards. It fails with ErrDeckExhausted
// if fewer than n remain.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n <= 0 {
		return nil, fmt.Errorf("draw count must be positive, got %d", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d with %d remaining: %w", n, len(d.cards), ErrDeckExhausted)
	}
	drawn := append([]Card(nil), d.cards[:n]...)
	d.cards = d.cards[n:]
	return drawn, nil
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	cards, err := d.DrawN(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// BottomCards returns cards to the bottom of the deck, in the order given.
func (d *Deck) BottomCards(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// TopCards puts cards back on top of the deck so that the first card given
// is the next one drawn.
func (d *Deck) TopCards(cards ...Card) {
	d.cards = append(append([]Card(nil), cards...), d.cards...)
}

// Search extracts the first card matching the predicate. It reports false
// without altering the deck if nothing matches — this models "search and
// fail to find".
func (d *Deck) Search(pred func(Card) bool) (Card, bool) {
	for i, c := range d.cards {
		if pred(c) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// Count returns the number of cards matching the predicate.
func (d *Deck) Count(pred func(Card) bool) int {
	n := 0
	for _, c := range d.cards {
		if pred(c) {
			n++
		}
	}
	return n
}

// CountCategory returns the number of cards of the given category.
func (d *Deck) CountCategory(cat CardCategory) int {
	return d.Count(ByCategory(cat))
}
