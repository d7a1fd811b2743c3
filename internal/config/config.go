// Package config loads runtime defaults from the environment. Flags on
// the command line always override these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults holds environment-driven defaults for the simulator CLIs.
type Defaults struct {
	NSimulations                int     `env:"REDSIM_N_SIMULATIONS" envDefault:"5000"`
	Workers                     int     `env:"REDSIM_WORKERS" envDefault:"0"`
	CyclerLogic                 string  `env:"REDSIM_CYCLER_LOGIC" envDefault:"random"`
	CrowdsIneffectivenessWeight float64 `env:"REDSIM_CROWDS_WEIGHT" envDefault:"0.6"`
	MatthewFizzleRate           float64 `env:"REDSIM_MATTHEW_FIZZLE_RATE" envDefault:"0.15"`
	WebAddr                     string  `env:"REDSIM_WEB_ADDR" envDefault:"localhost:8080"`
}

// FromEnv loads defaults from environment variables.
func FromEnv() (Defaults, error) {
	var d Defaults
	if err := env.Parse(&d); err != nil {
		return Defaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}
