package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/baboonytim/redsim/internal/config"
	"github.com/baboonytim/redsim/internal/game"
	"github.com/baboonytim/redsim/internal/sim"
	"github.com/baboonytim/redsim/internal/web"
)

func main() {
	defs, err := config.FromEnv()
	if err != nil {
		fatal(err)
	}

	addr := flag.String("addr", defs.WebAddr, "HTTP listen address")
	deckSizes := flag.String("deck-sizes", "50,57,64,71,78,85,92,99", "deck sizes to sweep, comma-separated")
	tutors := flag.String("tutors", "0,1,2,3", "tutor counts to sweep, comma-separated")
	cyclers := flag.String("cyclers", "0,1,2", "cycler lost soul counts to sweep, comma-separated")
	nSims := flag.Int("n", defs.NSimulations, "trials per configuration point")
	workers := flag.Int("workers", defs.Workers, "worker goroutines (0 uses all CPUs)")
	cyclerLogic := flag.String("cycler-logic", defs.CyclerLogic, "cycler give-up policy: random or optimized")
	seed := flag.Int64("seed", 0, "base random seed (0 picks one at random)")
	flag.Parse()

	logic, err := game.ParseCyclerLogic(*cyclerLogic)
	if err != nil {
		fatal(err)
	}
	sizes, err := parseIntList(*deckSizes)
	if err != nil {
		fatal(fmt.Errorf("--deck-sizes: %w", err))
	}
	tutorCounts, err := parseIntList(*tutors)
	if err != nil {
		fatal(fmt.Errorf("--tutors: %w", err))
	}
	cyclerCounts, err := parseIntList(*cyclers)
	if err != nil {
		fatal(fmt.Errorf("--cyclers: %w", err))
	}

	sweep := sim.Sweep{
		DeckSizes:        sizes,
		TutorCounts:      tutorCounts,
		CyclerSoulCounts: cyclerCounts,
		Base: sim.SimulationConfig{
			NSimulations:                *nSims,
			CyclerLogic:                 logic,
			CrowdsIneffectivenessWeight: defs.CrowdsIneffectivenessWeight,
			MatthewFizzleRate:           defs.MatthewFizzleRate,
			Seed:                        *seed,
		},
	}

	hub := web.NewHub()
	srv := web.NewServer(hub)

	go func() {
		hub.Reset()
		defer hub.Finish()
		runner := &sim.Runner{
			Workers:  *workers,
			OnRecord: hub.Publish,
		}
		if _, err := runner.Run(context.Background(), sweep); err != nil {
			log.Printf("sweep failed: %v", err)
		}
	}()

	log.Printf("redsim dashboard listening on http://%s", *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		fatal(err)
	}
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", field)
		}
		out = append(out, n)
	}
	return out, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
