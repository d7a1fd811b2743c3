package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/baboonytim/redsim/internal/log"
)

const (
	// OpeningHandSize is the number of cards drawn for the opening hand.
	OpeningHandSize = 8

	// TurnDrawSize is the first-turn draw. Going first forfeits it.
	TurnDrawSize = 3
)

// TrialState tracks where a trial is in its lifecycle.
type TrialState int

const (
	TrialInitialized TrialState = iota
	TrialDrawing
	TrialResolvingEffects
	TrialEvaluated
)

func (s TrialState) String() string {
	switch s {
	case TrialInitialized:
		return "Initialized"
	case TrialDrawing:
		return "Drawing"
	case TrialResolvingEffects:
		return "ResolvingEffects"
	case TrialEvaluated:
		return "Evaluated"
	default:
		return "Unknown"
	}
}

// TrialConfig is the slice of the simulation configuration the engine needs
// to play out one opening sequence.
type TrialConfig struct {
	GoingFirst                  bool
	AccountForCrowds            bool
	CyclerLogic                 CyclerLogic
	CrowdsIneffectivenessWeight float64
	MatthewFizzleRate           float64
}

// TrialOutcome is the result of one fully evaluated trial.
type TrialOutcome struct {
	// MacguffinInPlay reports whether the target card reached the
	// territory by the end of turn one.
	MacguffinInPlay bool

	// BrigadesDrawable is the number of unique brigades the opponent's
	// draw engine could see in the final hand. Zero when blocked.
	BrigadesDrawable int

	// CrowdsInPlay reports whether a crowds lost soul reached territory.
	CrowdsInPlay bool

	// CrowdsBlocked reports whether the crowds soul fully blocked the
	// opponent draw engine this trial.
	CrowdsBlocked bool

	// MatthewFizzled reports whether the opponent draw engine was absent
	// this trial regardless of deck contents.
	MatthewFizzled bool

	// CardsDrawn is the total number of cards drawn from the deck.
	CardsDrawn int
}

// Trial models one randomized playthrough of the opening draw sequence.
// It owns its hand, territory, discard, and deck; nothing is shared across
// trials except the immutable card list it was built from.
type Trial struct {
	cfg    TrialConfig
	deck   *Deck
	rng    *rand.Rand
	logger log.EventLogger
	index  int

	hand      Zone
	territory Zone
	discard   Zone

	state          TrialState
	hopperResolved bool
	cardsDrawn     int
	fizzled        bool
	crowdsBlocked  bool
}

// NewTrial builds a trial over a freshly shuffled copy of cards. The random
// source must be trial-scoped; passing a shared generator breaks trial
// independence under parallel execution.
func NewTrial(cards []Card, cfg TrialConfig, rng *rand.Rand, logger log.EventLogger) *Trial {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	t := &Trial{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		state:  TrialInitialized,
	}
	t.deck = NewDeck(cards, rng)
	return t
}

// SetIndex tags this trial's log events with a run-scoped trial index.
func (t *Trial) SetIndex(i int) {
	t.index = i
}

func (t *Trial) log(e log.TrialEvent) {
	t.logger.Log(e)
}

// Hand returns the current hand contents.
func (t *Trial) Hand() []Card { return t.hand.Cards() }

// Territory returns the cards placed in territory.
func (t *Trial) Territory() []Card { return t.territory.Cards() }

// State returns the trial's lifecycle state.
func (t *Trial) State() TrialState { return t.state }

// Run plays out the full opening sequence and evaluates the outcome.
// It can be called once; subsequent calls fail.
func (t *Trial) Run() (TrialOutcome, error) {
	if t.state != TrialInitialized {
		return TrialOutcome{}, fmt.Errorf("trial already run (state %s)", t.state)
	}
	t.log(log.NewShuffleEvent(t.index, t.deck.Size()))

	t.state = TrialDrawing
	if err := t.draw(OpeningHandSize); err != nil {
		return TrialOutcome{}, err
	}
	if !t.cfg.GoingFirst {
		n := min(TurnDrawSize, t.deck.Size())
		if n > 0 {
			if err := t.draw(n); err != nil {
				return TrialOutcome{}, err
			}
		}
	}

	t.state = TrialResolvingEffects
	if err := t.resolveEffects(); err != nil {
		return TrialOutcome{}, err
	}

	t.state = TrialEvaluated
	return t.evaluate(), nil
}

// draw moves n cards from the deck to the hand, placing any lost souls
// drawn along the way.
func (t *Trial) draw(n int) error {
	cards, err := t.deck.DrawN(n)
	if err != nil {
		return err
	}
	t.cardsDrawn += n
	for _, c := range cards {
		t.log(log.NewDrawEvent(t.index, c.Name))
	}
	t.hand.Add(cards...)
	t.placeLostSouls()
	return nil
}

// placeLostSouls moves every lost soul from hand to territory, redrawing one
// card per placed soul while the deck lasts. Redrawn souls are placed in the
// same pass.
func (t *Trial) placeLostSouls() {
	for {
		soul, ok := t.hand.RemoveFirst(func(c Card) bool { return c.IsLostSoul() })
		if !ok {
			return
		}
		t.territory.Add(soul)
		t.log(log.NewSoulPlacedEvent(t.index, soul.Name))
		if t.deck.Size() == 0 {
			continue
		}
		drawn, err := t.deck.Draw()
		if err != nil {
			continue
		}
		t.cardsDrawn++
		t.hand.Add(drawn)
		t.log(log.NewRedrawEvent(t.index, drawn.Name))
	}
}

// resolveEffects runs every active special-card effect in fixed precedence
// order, then samples the opponent-side randomness.
func (t *Trial) resolveEffects() error {
	t.playMacguffin()
	for _, cat := range effectOrder {
		if err := effectResolvers[cat](t); err != nil {
			return err
		}
		t.playMacguffin()
	}
	t.sampleOpponent()
	return nil
}

// playMacguffin puts the macguffin in play whenever it is in hand.
func (t *Trial) playMacguffin() {
	mac, ok := t.hand.RemoveFirst(ByCategory(CategoryMacguffin))
	if !ok {
		return
	}
	t.territory.Add(mac)
	t.log(log.NewMacguffinPlayedEvent(t.index, mac.Name))
}

// macguffinAcquired reports whether the target card has shown up in hand or
// territory.
func (t *Trial) macguffinAcquired() bool {
	return t.hand.CountCategory(CategoryMacguffin) > 0 ||
		t.territory.CountCategory(CategoryMacguffin) > 0
}

// sampleOpponent draws the opponent-side Bernoulli outcomes. Each is sampled
// once per trial, independent of all other randomness.
func (t *Trial) sampleOpponent() {
	t.fizzled = t.rng.Float64() < t.cfg.MatthewFizzleRate
	if t.fizzled {
		t.log(log.NewFizzleEvent(t.index))
	}
	if t.cfg.AccountForCrowds && t.territory.CountCategory(CategoryCrowdsLostSoul) > 0 {
		t.crowdsBlocked = t.rng.Float64() >= t.cfg.CrowdsIneffectivenessWeight
		if t.crowdsBlocked {
			t.log(log.NewCrowdsBlockEvent(t.index))
		}
	}
}

// evaluate computes the trial outcome from the final play state.
func (t *Trial) evaluate() TrialOutcome {
	out := TrialOutcome{
		MacguffinInPlay: t.territory.CountCategory(CategoryMacguffin) > 0,
		CrowdsInPlay:    t.territory.CountCategory(CategoryCrowdsLostSoul) > 0,
		CrowdsBlocked:   t.crowdsBlocked,
		MatthewFizzled:  t.fizzled,
		CardsDrawn:      t.cardsDrawn,
	}
	if !t.fizzled && !t.crowdsBlocked {
		out.BrigadesDrawable = CountBrigades(t.hand.Cards())
	}
	t.log(log.NewOutcomeEvent(t.index, fmt.Sprintf(
		"macguffin_in_play=%t brigades_drawable=%d cards_drawn=%d",
		out.MacguffinInPlay, out.BrigadesDrawable, out.CardsDrawn)))
	return out
}
