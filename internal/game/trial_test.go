package game

import (
	"testing"

	"github.com/baboonytim/redsim/internal/log"
)

// baseDeck returns a deck of one macguffin and n-1 filler cards.
func baseDeck(n int) []Card {
	deck := []Card{macguffin()}
	return append(deck, fillerN(n-1)...)
}

func runTrial(t *testing.T, cards []Card, cfg TrialConfig, seed uint64) (TrialOutcome, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	trial := NewTrial(cards, cfg, testRNG(seed), logger)
	out, err := trial.Run()
	if err != nil {
		t.Fatalf("trial run: %v", err)
	}
	return out, logger
}

func TestOpeningDrawGoingFirst(t *testing.T) {
	out, logger := runTrial(t, baseDeck(50), TrialConfig{GoingFirst: true}, 1)

	if out.CardsDrawn != OpeningHandSize {
		t.Errorf("going first draws %d, drew %d", OpeningHandSize, out.CardsDrawn)
	}
	if n := len(logger.EventsOfType(log.EventDraw)); n != OpeningHandSize {
		t.Errorf("expected %d draw events, got %d", OpeningHandSize, n)
	}
}

func TestOpeningDrawGoingSecond(t *testing.T) {
	out, _ := runTrial(t, baseDeck(50), TrialConfig{}, 1)

	want := OpeningHandSize + TurnDrawSize
	if out.CardsDrawn != want {
		t.Errorf("going second draws %d, drew %d", want, out.CardsDrawn)
	}
}

func TestRunTwiceFails(t *testing.T) {
	trial := NewTrial(baseDeck(50), TrialConfig{}, testRNG(1), nil)
	if _, err := trial.Run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := trial.Run(); err == nil {
		t.Fatal("second run should fail")
	}
	if trial.State() != TrialEvaluated {
		t.Errorf("state should stay Evaluated, is %s", trial.State())
	}
}

// TestLostSoulsArePlacedWithRedraw: every drawn soul lands in territory and
// is replaced by a redraw, so the hand never holds a soul.
func TestLostSoulsArePlacedWithRedraw(t *testing.T) {
	deck := []Card{meekSoul(), meekSoul()}
	deck = append(deck, fillerN(48)...)

	for seed := uint64(0); seed < 50; seed++ {
		logger := log.NewMemoryLogger()
		trial := NewTrial(deck, TrialConfig{GoingFirst: true}, testRNG(seed), logger)
		out, err := trial.Run()
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		for _, c := range trial.Hand() {
			if c.IsLostSoul() {
				t.Fatalf("seed %d: lost soul %s left in hand", seed, c.Name)
			}
		}
		souls := 0
		for _, c := range trial.Territory() {
			if c.IsLostSoul() {
				souls++
			}
		}
		redraws := len(logger.EventsOfType(log.EventRedraw))
		if souls != redraws {
			t.Fatalf("seed %d: %d souls placed but %d redraws", seed, souls, redraws)
		}
		if out.CardsDrawn != OpeningHandSize+redraws {
			t.Fatalf("seed %d: cards drawn %d, want %d", seed, out.CardsDrawn, OpeningHandSize+redraws)
		}
	}
}

// TestMacguffinDrawnIsPlayed: whenever the opening sequence puts the
// macguffin in hand it ends the trial in play.
func TestMacguffinDrawnIsPlayed(t *testing.T) {
	found := false
	for seed := uint64(0); seed < 100; seed++ {
		out, logger := runTrial(t, baseDeck(50), TrialConfig{}, seed)
		if out.MacguffinInPlay {
			found = true
			if len(logger.EventsOfType(log.EventMacguffinPlayed)) != 1 {
				t.Fatalf("seed %d: macguffin in play without a play event", seed)
			}
		}
	}
	if !found {
		t.Error("100 seeds with p≈0.22 should hit at least one success")
	}
}

func TestSameSeedSameOutcome(t *testing.T) {
	deck := []Card{macguffin(), Card{Name: "Tutor", Category: CategoryTutor}}
	deck = append(deck, meekSoul(), meekSoul())
	deck = append(deck, fillerN(46)...)
	cfg := TrialConfig{CyclerLogic: CyclerOptimized, MatthewFizzleRate: 0.15}

	for seed := uint64(0); seed < 20; seed++ {
		a, _ := runTrial(t, deck, cfg, seed)
		b, _ := runTrial(t, deck, cfg, seed)
		if a != b {
			t.Fatalf("seed %d: outcomes diverged: %+v vs %+v", seed, a, b)
		}
	}
}

// TestSuccessRateMatchesHypergeometric: with no effects in the deck the
// success probability is exactly the chance of one target card landing in an
// 8-card opening draw from 50, which is 8/50.
func TestSuccessRateMatchesHypergeometric(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	deck := baseDeck(50)
	cfg := TrialConfig{GoingFirst: true}

	const trials = 200000
	successes := 0
	for i := 0; i < trials; i++ {
		out, _ := runTrial(t, deck, cfg, uint64(i))
		if out.MacguffinInPlay {
			successes++
		}
	}

	got := float64(successes) / trials
	want := 8.0 / 50.0
	if diff := got - want; diff < -0.005 || diff > 0.005 {
		t.Errorf("success rate %.4f, want %.4f ± 0.005", got, want)
	}
}

func TestFizzleRateOneZeroesBrigades(t *testing.T) {
	deck := append([]Card{brigadeCard("Hero", "Red", "Blue")}, baseDeck(49)...)
	cfg := TrialConfig{MatthewFizzleRate: 1.0}

	for seed := uint64(0); seed < 20; seed++ {
		out, _ := runTrial(t, deck, cfg, seed)
		if !out.MatthewFizzled {
			t.Fatalf("seed %d: fizzle rate 1.0 must always fizzle", seed)
		}
		if out.BrigadesDrawable != 0 {
			t.Fatalf("seed %d: fizzled trial reports %d brigades", seed, out.BrigadesDrawable)
		}
	}
}

// TestCrowdsAlwaysBlocksAtZeroWeight: with the ineffectiveness weight at 0
// the opponent never answers the crowds soul, so every trial where it lands
// in territory is blocked.
func TestCrowdsAlwaysBlocksAtZeroWeight(t *testing.T) {
	crowds := Card{Name: `Lost Soul "Crowds"`, Category: CategoryCrowdsLostSoul}
	deck := append([]Card{crowds}, fillerN(49)...)
	cfg := TrialConfig{AccountForCrowds: true, CrowdsIneffectivenessWeight: 0}

	sawCrowds := false
	for seed := uint64(0); seed < 50; seed++ {
		out, _ := runTrial(t, deck, cfg, seed)
		if out.CrowdsInPlay {
			sawCrowds = true
			if !out.CrowdsBlocked {
				t.Fatalf("seed %d: crowds in play at weight 0 must block", seed)
			}
			if out.BrigadesDrawable != 0 && !out.MatthewFizzled {
				t.Fatalf("seed %d: blocked trial reports %d brigades", seed, out.BrigadesDrawable)
			}
		} else if out.CrowdsBlocked {
			t.Fatalf("seed %d: blocked without crowds in play", seed)
		}
	}
	if !sawCrowds {
		t.Error("50 seeds should land the crowds soul at least once")
	}
}

func TestBrigadesDrawableCountsUniqueHand(t *testing.T) {
	deck := []Card{
		brigadeCard("R1", "Red"),
		brigadeCard("R2", "Red"),
		brigadeCard("B", "Blue"),
	}
	deck = append(deck, fillerN(5)...)

	// Exactly 8 cards: the whole deck is the opening hand.
	trial := NewTrial(deck, TrialConfig{GoingFirst: true}, testRNG(1), nil)
	out, err := trial.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.BrigadesDrawable != 2 {
		t.Errorf("hand covers Red and Blue, got %d", out.BrigadesDrawable)
	}
}
