package game

import (
	"encoding/json"
	"testing"
)

func TestBrigadeValueExpandsMulti(t *testing.T) {
	cases := []struct {
		name     string
		brigades []Brigade
		want     int
	}{
		{"plain", []Brigade{"Red"}, 1},
		{"two colors", []Brigade{"Red", "Blue"}, 2},
		{"good multi", []Brigade{BrigadeGoodMulti}, 8},
		{"evil multi", []Brigade{BrigadeEvilMulti}, 7},
		{"color plus multi", []Brigade{"Black", BrigadeGoodMulti}, 9},
		{"none", nil, 0},
	}
	for _, tc := range cases {
		c := Card{Name: tc.name, Brigades: tc.brigades}
		if got := c.BrigadeValue(); got != tc.want {
			t.Errorf("%s: BrigadeValue = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCountBrigadesDeduplicates(t *testing.T) {
	cards := []Card{
		brigadeCard("A", "Red"),
		brigadeCard("B", "Red", "Blue"),
		brigadeCard("C", BrigadeGoodMulti), // covers Red and Blue again
	}
	if got := CountBrigades(cards); got != len(GoodBrigades) {
		t.Errorf("CountBrigades = %d, want %d", got, len(GoodBrigades))
	}

	mixed := []Card{
		brigadeCard("D", BrigadeGoodMulti),
		brigadeCard("E", BrigadeEvilMulti),
	}
	want := len(GoodBrigades) + len(EvilBrigades)
	if got := CountBrigades(mixed); got != want {
		t.Errorf("CountBrigades = %d, want %d", got, want)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, cat := range []CardCategory{
		CategoryNormal, CategoryMacguffin, CategoryTutor, CategoryLostSoul,
		CategoryCyclerSoul, CategoryHopper, CategoryVirginBirth,
		CategoryProsperity, CategoryFourDrachmaCoin, CategoryCrowdsLostSoul,
	} {
		parsed, err := ParseCategory(cat.String())
		if err != nil {
			t.Errorf("%s: %v", cat, err)
			continue
		}
		if parsed != cat {
			t.Errorf("%s round-tripped to %s", cat, parsed)
		}
	}

	if _, err := ParseCategory("nonsense"); err == nil {
		t.Error("unknown category should fail to parse")
	}
}

func TestLostSoulCategories(t *testing.T) {
	souls := []CardCategory{
		CategoryLostSoul, CategoryCyclerSoul, CategoryHopper,
		CategoryProsperity, CategoryCrowdsLostSoul,
	}
	for _, cat := range souls {
		if !cat.IsLostSoul() {
			t.Errorf("%s should count as a lost soul", cat)
		}
	}
	for _, cat := range []CardCategory{CategoryNormal, CategoryMacguffin, CategoryTutor, CategoryVirginBirth, CategoryFourDrachmaCoin} {
		if cat.IsLostSoul() {
			t.Errorf("%s should not count as a lost soul", cat)
		}
	}
}

func TestCyclerLogicJSON(t *testing.T) {
	data, err := json.Marshal(CyclerOptimized)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"optimized"` {
		t.Errorf("marshaled to %s", data)
	}

	var logic CyclerLogic
	if err := json.Unmarshal([]byte(`"random"`), &logic); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if logic != CyclerRandom {
		t.Errorf("unmarshaled to %s", logic)
	}
	if err := json.Unmarshal([]byte(`"bogus"`), &logic); err == nil {
		t.Error("bogus logic should fail to unmarshal")
	}
}
