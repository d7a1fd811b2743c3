package game

// Zone is an ordered pile of cards (hand, territory, discard). The zero value
// is an empty zone ready for use.
type Zone struct {
	cards []Card
}

// Add appends cards to the zone.
func (z *Zone) Add(cards ...Card) {
	z.cards = append(z.cards, cards...)
}

// Cards returns the cards currently in the zone. The slice is owned by the
// zone and must not be mutated by the caller.
func (z *Zone) Cards() []Card {
	return z.cards
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int {
	return len(z.cards)
}

// Count returns the number of cards matching the predicate.
func (z *Zone) Count(pred func(Card) bool) int {
	n := 0
	for _, c := range z.cards {
		if pred(c) {
			n++
		}
	}
	return n
}

// CountCategory returns the number of cards of the given category.
func (z *Zone) CountCategory(cat CardCategory) int {
	return z.Count(ByCategory(cat))
}

// RemoveFirst removes and returns the first card matching the predicate.
// It reports false without altering the zone if nothing matches — a failed
// search is a normal outcome, not an error.
func (z *Zone) RemoveFirst(pred func(Card) bool) (Card, bool) {
	for i, c := range z.cards {
		if pred(c) {
			return z.RemoveAt(i), true
		}
	}
	return Card{}, false
}

// RemoveAt removes and returns the card at index i, preserving order.
func (z *Zone) RemoveAt(i int) Card {
	c := z.cards[i]
	z.cards = append(z.cards[:i], z.cards[i+1:]...)
	return c
}

// --- Common predicates ---

// ByCategory matches cards of the given category.
func ByCategory(cat CardCategory) func(Card) bool {
	return func(c Card) bool { return c.Category == cat }
}

// NonLostSoul matches cards that are not lost souls.
func NonLostSoul(c Card) bool {
	return !c.IsLostSoul()
}
