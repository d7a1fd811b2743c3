package sim

import (
	"fmt"

	"github.com/baboonytim/redsim/internal/game"
)

// SoulsRequired returns the number of lost souls a legal deck of the given
// size must carry: 7 at 50 cards, plus one per 7 cards, up to 14 at 105.
func SoulsRequired(deckSize int) (int, error) {
	if deckSize < 50 || deckSize > 105 {
		return 0, &ConfigError{
			Param:  "deck_size",
			Reason: fmt.Sprintf("%d is outside the 50-105 range the lost-souls table covers", deckSize),
		}
	}
	return 7 + (deckSize-50)/7, nil
}

// GenerateDeck builds the parameterized deck template for one configuration
// point: one macguffin, the configured tutors and cycler souls, meek souls
// to meet the lost-souls requirement, the optional singleton specials, and
// plain filler up to the deck size.
func GenerateDeck(cfg SimulationConfig) ([]game.Card, error) {
	souls, err := SoulsRequired(cfg.DeckSize)
	if err != nil {
		return nil, err
	}
	filler := cfg.fillerCount(souls)
	if filler < 0 {
		return nil, &ConfigError{
			Param:  "deck_size",
			Reason: fmt.Sprintf("%d is too small for the configured special cards", cfg.DeckSize),
		}
	}

	deck := make([]game.Card, 0, cfg.DeckSize)
	deck = append(deck, game.Card{Name: "Matthew", Category: game.CategoryMacguffin})

	for i := 0; i < cfg.NTutors; i++ {
		deck = append(deck, game.Card{Name: "Tutor", Category: game.CategoryTutor})
	}
	for i := 0; i < cfg.NCyclerSouls; i++ {
		deck = append(deck, game.Card{Name: "Cycler Lost Soul", Category: game.CategoryCyclerSoul})
	}

	meek := souls - cfg.NCyclerSouls
	if cfg.AccountForCrowds && meek > 0 {
		deck = append(deck, game.Card{Name: `Lost Soul "Crowds"`, Category: game.CategoryCrowdsLostSoul})
		meek--
	}
	for i := 0; i < meek; i++ {
		deck = append(deck, game.Card{Name: "Meek Lost Soul", Category: game.CategoryLostSoul})
	}

	if cfg.IncludeHopper {
		deck = append(deck, game.Card{Name: "The Hopper", Category: game.CategoryHopper})
	}
	if cfg.Prosperity {
		deck = append(deck, game.Card{Name: `Lost Soul "Prosperity"`, Category: game.CategoryProsperity})
	}
	if cfg.VirginBirth {
		deck = append(deck, game.Card{Name: "The Virgin Birth", Category: game.CategoryVirginBirth})
	}
	if cfg.FourDrachmaCoin {
		deck = append(deck, game.Card{Name: "Four Drachma Coin", Category: game.CategoryFourDrachmaCoin})
	}

	for i := 0; i < filler; i++ {
		deck = append(deck, game.Card{Name: "Filler", Category: game.CategoryNormal})
	}
	return deck, nil
}
