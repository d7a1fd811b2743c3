package sim

import (
	"fmt"

	"github.com/baboonytim/redsim/internal/game"
)

// SimulationConfig is the immutable input for one configuration point.
type SimulationConfig struct {
	NSimulations int `json:"n_simulations"`
	DeckSize     int `json:"deck_size"`
	NTutors      int `json:"n_tutors"`
	NCyclerSouls int `json:"n_cycler_souls"`

	GoingFirst      bool `json:"going_first"`
	IncludeHopper   bool `json:"include_hopper"`
	VirginBirth     bool `json:"virgin_birth"`
	Prosperity      bool `json:"prosperity"`
	FourDrachmaCoin bool `json:"four_drachma_coin"`

	// AccountForCrowds enables crowds-lost-soul accounting on the
	// opponent side. Generated decks swap one meek soul for a crowds soul
	// when set.
	AccountForCrowds bool `json:"account_for_crowds"`

	CyclerLogic game.CyclerLogic `json:"cycler_logic"`

	// CrowdsIneffectivenessWeight is the chance the opponent answers the
	// crowds soul; the engine blocks with probability 1 − weight.
	CrowdsIneffectivenessWeight float64 `json:"crowds_ineffectiveness_weight"`

	// MatthewFizzleRate is the chance the opponent draw engine is absent
	// on turn one regardless of deck contents.
	MatthewFizzleRate float64 `json:"matthew_fizzle_rate"`

	// Seed drives all trial randomness. Zero means "pick a random seed"
	// at run time; any other value makes the run reproducible.
	Seed int64 `json:"seed"`
}

// ConfigError reports an invalid simulation parameter. It is fatal and
// surfaced before any trial runs.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Reason)
}

// Validate checks every parameter constraint. It runs once at experiment
// entry, before any randomness is consumed.
func (c SimulationConfig) Validate() error {
	if c.NSimulations <= 0 {
		return &ConfigError{Param: "n_simulations", Reason: fmt.Sprintf("must be positive, got %d", c.NSimulations)}
	}
	if c.CrowdsIneffectivenessWeight < 0 || c.CrowdsIneffectivenessWeight > 1 {
		return &ConfigError{Param: "crowds_ineffectiveness_weight", Reason: fmt.Sprintf("must be in [0,1], got %g", c.CrowdsIneffectivenessWeight)}
	}
	if c.MatthewFizzleRate < 0 || c.MatthewFizzleRate > 1 {
		return &ConfigError{Param: "matthew_fizzle_rate", Reason: fmt.Sprintf("must be in [0,1], got %g", c.MatthewFizzleRate)}
	}
	if c.NTutors < 0 {
		return &ConfigError{Param: "n_tutors", Reason: "must not be negative"}
	}
	if c.NCyclerSouls < 0 {
		return &ConfigError{Param: "n_cycler_souls", Reason: "must not be negative"}
	}
	souls, err := SoulsRequired(c.DeckSize)
	if err != nil {
		return err
	}
	if c.NCyclerSouls > souls {
		return &ConfigError{
			Param:  "n_cycler_souls",
			Reason: fmt.Sprintf("%d exceeds the %d lost souls a %d-card deck carries", c.NCyclerSouls, souls, c.DeckSize),
		}
	}
	if n := c.fillerCount(souls); n < 0 {
		return &ConfigError{
			Param:  "deck_size",
			Reason: fmt.Sprintf("%d is too small for the configured special cards", c.DeckSize),
		}
	}
	return nil
}

// fillerCount returns the number of plain cards needed to pad the generated
// deck to DeckSize. Negative means the specials do not fit.
func (c SimulationConfig) fillerCount(souls int) int {
	n := c.DeckSize - souls - c.NTutors - 1 // one macguffin
	if c.IncludeHopper {
		n--
	}
	if c.VirginBirth {
		n--
	}
	if c.Prosperity {
		n--
	}
	if c.FourDrachmaCoin {
		n--
	}
	return n
}

// trialConfig projects the engine-facing slice of the configuration.
func (c SimulationConfig) trialConfig() game.TrialConfig {
	return game.TrialConfig{
		GoingFirst:                  c.GoingFirst,
		AccountForCrowds:            c.AccountForCrowds,
		CyclerLogic:                 c.CyclerLogic,
		CrowdsIneffectivenessWeight: c.CrowdsIneffectivenessWeight,
		MatthewFizzleRate:           c.MatthewFizzleRate,
	}
}
