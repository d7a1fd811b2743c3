// Package decklist loads card libraries and decklists from YAML files
// so that simulations can run against real deck constructions instead
// of generated templates.
package decklist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baboonytim/redsim/internal/game"
)

// LibraryFile represents the top-level YAML structure of a card library.
type LibraryFile struct {
	Cards []LibraryEntry `yaml:"cards"`
}

// LibraryEntry describes a single card definition.
type LibraryEntry struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Brigades []string `yaml:"brigades"`
}

// Library maps card names to their definitions.
type Library struct {
	cards map[string]game.Card
}

// LoadLibrary parses a YAML card library file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lf LibraryFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse library YAML: %w", err)
	}

	lib := &Library{cards: make(map[string]game.Card, len(lf.Cards))}
	for _, entry := range lf.Cards {
		cat, err := game.ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.Name, err)
		}
		brigades := make([]game.Brigade, 0, len(entry.Brigades))
		for _, b := range entry.Brigades {
			brigades = append(brigades, game.Brigade(b))
		}
		if _, dup := lib.cards[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate card %q in library", entry.Name)
		}
		lib.cards[entry.Name] = game.Card{
			Name:     entry.Name,
			Category: cat,
			Brigades: brigades,
		}
	}
	return lib, nil
}

// Lookup returns the card definition for a name.
func (l *Library) Lookup(name string) (game.Card, bool) {
	c, ok := l.cards[name]
	return c, ok
}

// Size returns the number of card definitions in the library.
func (l *Library) Size() int { return len(l.cards) }

// DeckFile represents the top-level YAML structure of a decklist file.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML decklist file and resolves every entry
// against the library, returning a map of deck name to card slice.
func ParseDeckFile(path string, lib *Library) (map[string][]game.Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}

	decks := make(map[string][]game.Card, len(df.Decks))
	for _, deck := range df.Decks {
		cards, err := resolveEntries(deck, lib)
		if err != nil {
			return nil, err
		}
		decks[deck.Name] = cards
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the decklist file.
func DeckByNumber(path string, lib *Library, n int) (string, []game.Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return "", nil, err
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	cards, err := resolveEntries(deck, lib)
	if err != nil {
		return "", nil, err
	}
	return deck.Name, cards, nil
}

func readDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	return &df, nil
}

func resolveEntries(deck DeckEntry, lib *Library) ([]game.Card, error) {
	var cards []game.Card
	for _, entry := range deck.Cards {
		def, ok := lib.Lookup(entry.Name)
		if !ok {
			return nil, fmt.Errorf("deck %q: unknown card %q", deck.Name, entry.Name)
		}
		if entry.Count < 1 {
			return nil, fmt.Errorf("deck %q: card %q has count %d", deck.Name, entry.Name, entry.Count)
		}
		for i := 0; i < entry.Count; i++ {
			cards = append(cards, def)
		}
	}
	return cards, nil
}
