package game

import (
	"math/rand/v2"

	"github.com/baboonytim/redsim/internal/log"
)

// Effect resolution constants. These model fixed card text, not tunables.
const (
	// HopperBonusDraw is the size of the one-shot extra draw the hopper
	// soul grants when it reaches the territory in the opening sequence.
	HopperBonusDraw = 2

	// VirginBirthLookahead is how deep Virgin Birth looks when exchanging
	// itself for a card from the top of the deck.
	VirginBirthLookahead = 6

	// CoinLookahead is how deep Four Drachma Coin looks when selecting an
	// additional targeted draw.
	CoinLookahead = 3
)

// effectResolver resolves one special-card effect against the trial state.
// Resolvers never fail on "no eligible target" — they no-op, reflecting that
// failed searches are a normal game outcome.
type effectResolver func(t *Trial) error

// effectOrder is the fixed precedence in which active special-card effects
// resolve within a trial.
var effectOrder = []CardCategory{
	CategoryHopper,
	CategoryTutor,
	CategoryCyclerSoul,
	CategoryProsperity,
	CategoryVirginBirth,
	CategoryFourDrachmaCoin,
}

// effectResolvers dispatches a card category to its resolver.
var effectResolvers = map[CardCategory]effectResolver{
	CategoryHopper:          resolveHopper,
	CategoryTutor:           resolveTutors,
	CategoryCyclerSoul:      resolveCyclerSouls,
	CategoryProsperity:      resolveProsperity,
	CategoryVirginBirth:     resolveVirginBirth,
	CategoryFourDrachmaCoin: resolveFourDrachmaCoin,
}

// resolveHopper grants a one-shot bonus draw when the hopper soul reached
// the territory during the opening sequence.
func resolveHopper(t *Trial) error {
	if t.hopperResolved || t.territory.CountCategory(CategoryHopper) == 0 {
		return nil
	}
	t.hopperResolved = true
	n := min(HopperBonusDraw, t.deck.Size())
	if n == 0 {
		return nil
	}
	t.log(log.NewBonusDrawEvent(t.index, n, "The Hopper"))
	return t.draw(n)
}

// resolveTutors plays tutors from hand while the macguffin is still missing,
// searching it out of the deck and into the territory.
func resolveTutors(t *Trial) error {
	for t.hand.CountCategory(CategoryTutor) > 0 {
		if t.macguffinAcquired() {
			return nil
		}
		if t.deck.CountCategory(CategoryMacguffin) == 0 {
			// Search and fail to find: no-op, the deck is unchanged.
			t.log(log.NewTutorWhiffEvent(t.index))
			return nil
		}
		tutor, _ := t.hand.RemoveFirst(ByCategory(CategoryTutor))
		t.territory.Add(tutor)
		target, ok := t.deck.Search(ByCategory(CategoryMacguffin))
		if !ok {
			return nil
		}
		t.territory.Add(target)
		t.log(log.NewTutorSearchEvent(t.index, target.Name))
	}
	return nil
}

// resolveCyclerSouls digs for the macguffin: each cycler soul in territory
// bottoms one eligible hand card (chosen by policy) and draws a replacement,
// as long as the macguffin has not shown up.
func resolveCyclerSouls(t *Trial) error {
	cyclers := t.territory.CountCategory(CategoryCyclerSoul)
	for i := 0; i < cyclers; i++ {
		if t.macguffinAcquired() {
			return nil
		}
		idx, ok := chooseGiveUp(t.hand.Cards(), t.cfg.CyclerLogic, t.rng)
		if !ok {
			return nil
		}
		card := t.hand.RemoveAt(idx)
		t.deck.BottomCards(card)
		t.log(log.NewUnderdeckEvent(t.index, card.Name, "cycler soul"))
		if t.deck.Size() == 0 {
			return nil
		}
		if err := t.draw(1); err != nil {
			return err
		}
	}
	return nil
}

// resolveProsperity discards one eligible hand card (chosen by policy) and
// draws two.
func resolveProsperity(t *Trial) error {
	if t.territory.CountCategory(CategoryProsperity) == 0 {
		return nil
	}
	idx, ok := chooseGiveUp(t.hand.Cards(), t.cfg.CyclerLogic, t.rng)
	if !ok {
		return nil
	}
	card := t.hand.RemoveAt(idx)
	t.discard.Add(card)
	t.log(log.NewDiscardEvent(t.index, card.Name, "Prosperity"))
	n := min(2, t.deck.Size())
	if n == 0 {
		return nil
	}
	return t.draw(n)
}

// resolveVirginBirth exchanges Virgin Birth in hand for one of the top six
// deck cards, bottoming itself and returning the rest on top.
func resolveVirginBirth(t *Trial) error {
	vb, ok := t.hand.RemoveFirst(ByCategory(CategoryVirginBirth))
	if !ok {
		return nil
	}
	n := min(VirginBirthLookahead, t.deck.Size())
	if n == 0 {
		// Nothing to look at; the card idles in hand.
		t.hand.Add(vb)
		return nil
	}
	top, err := t.deck.DrawN(n)
	if err != nil {
		return err
	}
	keep := chooseKeep(top, t.cfg.CyclerLogic, t.rng)
	kept := top[keep]
	rest := append(append([]Card(nil), top[:keep]...), top[keep+1:]...)
	t.deck.TopCards(rest...)
	t.deck.BottomCards(vb)
	t.hand.Add(kept)
	t.log(log.NewExchangeEvent(t.index, kept.Name))
	t.placeLostSouls()
	return nil
}

// resolveFourDrachmaCoin spends the coin for an additional targeted draw:
// the highest-brigade card among the top three goes to hand, the rest to
// the bottom.
func resolveFourDrachmaCoin(t *Trial) error {
	coin, ok := t.hand.RemoveFirst(ByCategory(CategoryFourDrachmaCoin))
	if !ok {
		return nil
	}
	t.discard.Add(coin)
	n := min(CoinLookahead, t.deck.Size())
	if n == 0 {
		return nil
	}
	top, err := t.deck.DrawN(n)
	if err != nil {
		return err
	}
	pick := mostBrigades(top)
	picked := top[pick]
	rest := append(append([]Card(nil), top[:pick]...), top[pick+1:]...)
	t.deck.BottomCards(rest...)
	t.hand.Add(picked)
	t.log(log.NewCoinPickEvent(t.index, picked.Name))
	t.placeLostSouls()
	return nil
}

// --- Choice policies ---

// chooseGiveUp picks the index of the hand card to bottom or discard.
// Eligible cards are non-lost-souls that are not the macguffin. Reports
// false when nothing is eligible.
func chooseGiveUp(cards []Card, logic CyclerLogic, rng *rand.Rand) (int, bool) {
	eligible := func(c Card) bool {
		return NonLostSoul(c) && c.Category != CategoryMacguffin
	}
	var candidates []int
	for i, c := range cards {
		if eligible(c) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	if logic == CyclerOptimized {
		best := candidates[0]
		for _, i := range candidates[1:] {
			if cards[i].BrigadeValue() > cards[best].BrigadeValue() {
				best = i
			}
		}
		return best, true
	}
	return candidates[rng.IntN(len(candidates))], true
}

// chooseKeep picks which of the looked-at cards Virgin Birth keeps.
// Optimized keeps the non-soul with the fewest brigades (the cheapest card
// to commit to hand); when only souls are available it picks one at random.
// Random policy takes the top card.
func chooseKeep(cards []Card, logic CyclerLogic, rng *rand.Rand) int {
	if logic != CyclerOptimized {
		return 0
	}
	best := -1
	for i, c := range cards {
		if !NonLostSoul(c) {
			continue
		}
		if best < 0 || c.BrigadeValue() < cards[best].BrigadeValue() {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	return rng.IntN(len(cards))
}

// mostBrigades returns the index of the card with the highest brigade value,
// ties broken by first encountered.
func mostBrigades(cards []Card) int {
	best := 0
	for i, c := range cards[1:] {
		if c.BrigadeValue() > cards[best].BrigadeValue() {
			best = i + 1
		}
	}
	return best
}
