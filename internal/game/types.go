package game

import (
	"encoding/json"
	"fmt"
)

// --- Enums ---

// CardCategory classifies a card by the resolution rule attached to it.
type CardCategory int

const (
	CategoryNormal CardCategory = iota
	CategoryMacguffin
	CategoryTutor
	CategoryLostSoul
	CategoryCyclerSoul
	CategoryHopper
	CategoryVirginBirth
	CategoryProsperity
	CategoryFourDrachmaCoin
	CategoryCrowdsLostSoul
)

func (c CardCategory) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryMacguffin:
		return "macguffin"
	case CategoryTutor:
		return "tutor"
	case CategoryLostSoul:
		return "lost-soul"
	case CategoryCyclerSoul:
		return "cycler-soul"
	case CategoryHopper:
		return "hopper"
	case CategoryVirginBirth:
		return "virgin-birth"
	case CategoryProsperity:
		return "prosperity"
	case CategoryFourDrachmaCoin:
		return "four-drachma-coin"
	case CategoryCrowdsLostSoul:
		return "crowds-lost-soul"
	default:
		return "unknown"
	}
}

// ParseCategory parses the string form used in card library files.
func ParseCategory(s string) (CardCategory, error) {
	switch s {
	case "normal":
		return CategoryNormal, nil
	case "macguffin":
		return CategoryMacguffin, nil
	case "tutor":
		return CategoryTutor, nil
	case "lost-soul":
		return CategoryLostSoul, nil
	case "cycler-soul":
		return CategoryCyclerSoul, nil
	case "hopper":
		return CategoryHopper, nil
	case "virgin-birth":
		return CategoryVirginBirth, nil
	case "prosperity":
		return CategoryProsperity, nil
	case "four-drachma-coin":
		return CategoryFourDrachmaCoin, nil
	case "crowds-lost-soul":
		return CategoryCrowdsLostSoul, nil
	default:
		return CategoryNormal, fmt.Errorf("unknown card category %q", s)
	}
}

// IsLostSoul reports whether cards of this category are lost souls, i.e.
// auto-placed in territory when drawn.
func (c CardCategory) IsLostSoul() bool {
	switch c {
	case CategoryLostSoul, CategoryCyclerSoul, CategoryHopper, CategoryProsperity, CategoryCrowdsLostSoul:
		return true
	default:
		return false
	}
}

// CyclerLogic selects how cycler-style effects pick a card to give up.
type CyclerLogic int

const (
	// CyclerRandom chooses uniformly among eligible cards.
	CyclerRandom CyclerLogic = iota
	// CyclerOptimized deterministically gives up the card with the most
	// brigades (keeps the least useful hand), ties broken by first seen.
	CyclerOptimized
)

func (l CyclerLogic) String() string {
	if l == CyclerOptimized {
		return "optimized"
	}
	return "random"
}

// MarshalJSON serializes the logic as its string form.
func (l CyclerLogic) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses the string form.
func (l *CyclerLogic) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCyclerLogic(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseCyclerLogic parses the CLI/config string form.
func ParseCyclerLogic(s string) (CyclerLogic, error) {
	switch s {
	case "random":
		return CyclerRandom, nil
	case "optimized":
		return CyclerOptimized, nil
	default:
		return CyclerRandom, fmt.Errorf("unknown cycler logic %q (want random or optimized)", s)
	}
}

// --- Brigades ---

// Brigade is a color-tag classification used to measure opponent draw potential.
type Brigade string

const (
	BrigadeGoodMulti Brigade = "Good Multi"
	BrigadeEvilMulti Brigade = "Evil Multi"
)

// GoodBrigades are the good-alignment brigade colors a Good Multi card covers.
var GoodBrigades = []Brigade{
	"Blue", "Clay", "Gold", "Green", "Purple", "Red", "Silver", "White",
}

// EvilBrigades are the evil-alignment brigade colors an Evil Multi card covers.
var EvilBrigades = []Brigade{
	"Black", "Brown", "Crimson", "Evil Gold", "Gray", "Orange", "Pale Green",
}

// --- Card definition ---

// Card is an immutable card record. Identity is by name; a deck may contain
// duplicates.
type Card struct {
	Name     string
	Category CardCategory
	Brigades []Brigade
}

func (c Card) String() string {
	return c.Name
}

// IsLostSoul reports whether this card is auto-placed in territory when drawn.
func (c Card) IsLostSoul() bool {
	return c.Category.IsLostSoul()
}

// BrigadeValue returns the number of actual brigades this card covers, with
// multi markers expanded to their full color sets.
func (c Card) BrigadeValue() int {
	count := 0
	for _, b := range c.Brigades {
		switch b {
		case BrigadeGoodMulti:
			count += len(GoodBrigades)
		case BrigadeEvilMulti:
			count += len(EvilBrigades)
		default:
			count++
		}
	}
	return count
}

// CountBrigades returns the number of unique brigades covered by the given
// cards, expanding multi markers.
func CountBrigades(cards []Card) int {
	seen := make(map[Brigade]struct{})
	for _, c := range cards {
		for _, b := range c.Brigades {
			switch b {
			case BrigadeGoodMulti:
				for _, g := range GoodBrigades {
					seen[g] = struct{}{}
				}
			case BrigadeEvilMulti:
				for _, e := range EvilBrigades {
					seen[e] = struct{}{}
				}
			default:
				seen[b] = struct{}{}
			}
		}
	}
	return len(seen)
}
