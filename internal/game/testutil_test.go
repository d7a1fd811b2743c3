package game

import (
	"math/rand/v2"

	"github.com/baboonytim/redsim/internal/log"
)

// Card constructors for deterministic scenarios.

func filler(name string) Card {
	return Card{Name: name, Category: CategoryNormal}
}

func fillerN(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = filler("Filler")
	}
	return cards
}

func brigadeCard(name string, brigades ...Brigade) Card {
	return Card{Name: name, Category: CategoryNormal, Brigades: brigades}
}

func macguffin() Card {
	return Card{Name: "Matthew", Category: CategoryMacguffin}
}

func meekSoul() Card {
	return Card{Name: "Meek Lost Soul", Category: CategoryLostSoul}
}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// newScriptedTrial builds a trial whose deck keeps exactly the given order
// (no shuffle), with the hand and territory preloaded. Used to pin down
// effect resolution without fighting randomness.
func newScriptedTrial(cfg TrialConfig, deckOrder, hand, territory []Card) *Trial {
	t := &Trial{
		cfg:    cfg,
		rng:    testRNG(1),
		logger: log.NewMemoryLogger(),
		state:  TrialInitialized,
	}
	t.deck = &Deck{cards: append([]Card(nil), deckOrder...), rng: t.rng}
	t.hand.Add(hand...)
	t.territory.Add(territory...)
	return t
}
