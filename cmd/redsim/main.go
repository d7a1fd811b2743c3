package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/baboonytim/redsim/internal/config"
	"github.com/baboonytim/redsim/internal/decklist"
	"github.com/baboonytim/redsim/internal/game"
	"github.com/baboonytim/redsim/internal/log"
	"github.com/baboonytim/redsim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "sweep":
		runSweep(os.Args[2:])
	case "analyze":
		runAnalyze(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  redsim sweep   --deck-sizes LIST [--tutors LIST] [--cyclers LIST] [flags]")
	fmt.Println("  redsim analyze --deck N --decks FILE --library FILE [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sweep     Run Monte Carlo trials over every combination of deck size,")
	fmt.Println("            tutor count, and cycler soul count, and print a CSV summary")
	fmt.Println("  analyze   Run Monte Carlo trials against one deck from a decklist file")
}

// sharedFlags registers the simulation parameters common to both commands.
type sharedFlags struct {
	nSimulations *int
	goingFirst   *bool
	cyclerLogic  *string
	crowdsWeight *float64
	fizzleRate   *float64
	seed         *int64
	verbose      *bool
}

func registerShared(fs *flag.FlagSet, defs config.Defaults) sharedFlags {
	return sharedFlags{
		nSimulations: fs.Int("n", defs.NSimulations, "number of trials per configuration point"),
		goingFirst:   fs.Bool("going-first", false, "opponent goes first and forfeits the turn draw"),
		cyclerLogic:  fs.String("cycler-logic", defs.CyclerLogic, "cycler give-up policy: random or optimized"),
		crowdsWeight: fs.Float64("crowds-weight", defs.CrowdsIneffectivenessWeight, "chance the opponent answers the Crowds soul"),
		fizzleRate:   fs.Float64("fizzle-rate", defs.MatthewFizzleRate, "chance the opponent draw engine fizzles"),
		seed:         fs.Int64("seed", 0, "base random seed (0 picks one at random)"),
		verbose:      fs.Bool("v", false, "print per-trial event traces to stderr"),
	}
}

func (sf sharedFlags) apply(cfg *sim.SimulationConfig) error {
	logic, err := game.ParseCyclerLogic(*sf.cyclerLogic)
	if err != nil {
		return err
	}
	cfg.NSimulations = *sf.nSimulations
	cfg.GoingFirst = *sf.goingFirst
	cfg.CyclerLogic = logic
	cfg.CrowdsIneffectivenessWeight = *sf.crowdsWeight
	cfg.MatthewFizzleRate = *sf.fizzleRate
	cfg.Seed = *sf.seed
	return nil
}

func runSweep(args []string) {
	defs, err := config.FromEnv()
	if err != nil {
		fatal(err)
	}

	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	deckSizes := fs.String("deck-sizes", "50", "deck sizes to sweep, comma-separated (each 50-105)")
	tutors := fs.String("tutors", "0", "tutor counts to sweep, comma-separated")
	cyclers := fs.String("cyclers", "0", "cycler lost soul counts to sweep, comma-separated")
	hopper := fs.Bool("hopper", false, "include The Hopper in generated decks")
	virginBirth := fs.Bool("virgin-birth", false, "include The Virgin Birth in generated decks")
	prosperity := fs.Bool("prosperity", false, "include the Prosperity lost soul in generated decks")
	coin := fs.Bool("coin", false, "include Four Drachma Coin in generated decks")
	crowds := fs.Bool("crowds", false, "model the Crowds lost soul on the opponent side")
	workers := fs.Int("workers", defs.Workers, "worker goroutines (0 uses all CPUs)")
	output := fs.String("o", "", "write CSV to this file instead of stdout")
	shared := registerShared(fs, defs)
	fs.Parse(args)

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

	base := sim.SimulationConfig{
		IncludeHopper:    *hopper,
		VirginBirth:      *virginBirth,
		Prosperity:       *prosperity,
		FourDrachmaCoin:  *coin,
		AccountForCrowds: *crowds,
	}
	if err := shared.apply(&base); err != nil {
		fatal(err)
	}

	sweep := sim.Sweep{
		DeckSizes:        sizes,
		TutorCounts:      tutorCounts,
		CyclerSoulCounts: cyclerCounts,
		Base:             base,
	}

	runner := &sim.Runner{
		Workers: *workers,
		OnRecord: func(rec sim.SummaryRecord) {
			fmt.Fprintf(os.Stderr, "deck=%d tutors=%d cyclers=%d  p=%.4f  mean=%.3f\n",
				rec.Config.DeckSize, rec.Config.NTutors, rec.Config.NCyclerSouls,
				rec.SuccessProbability, rec.MeanBrigades)
		},
	}

	records, err := runner.Run(context.Background(), sweep)
	if err != nil {
		fatal(err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := sim.WriteCSV(out, records); err != nil {
		fatal(err)
	}
}

func runAnalyze(args []string) {
	defs, err := config.FromEnv()
	if err != nil {
		fatal(err)
	}

	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	deckNumber := fs.Int("deck", 1, "deck number (1-indexed from the decklist file)")
	decksFile := fs.String("decks", "decks.yaml", "path to decklist YAML file")
	libraryFile := fs.String("library", "cards.yaml", "path to card library YAML file")
	shared := registerShared(fs, defs)
	fs.Parse(args)

	lib, err := decklist.LoadLibrary(*libraryFile)
	if err != nil {
		fatal(err)
	}
	name, cards, err := decklist.DeckByNumber(*decksFile, lib, *deckNumber)
	if err != nil {
		fatal(err)
	}

	var cfg sim.SimulationConfig
	if err := shared.apply(&cfg); err != nil {
		fatal(err)
	}

	var logger log.EventLogger
	if *shared.verbose {
		logger = log.NewTextLogger(os.Stderr)
	}

	record, err := sim.AnalyzeDeck(context.Background(), cfg, cards, logger)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("deck %d (%s): %d cards, %d trials\n", *deckNumber, name, len(cards), record.Trials)
	fmt.Printf("  success probability:    %.4f\n", record.SuccessProbability)
	fmt.Printf("  mean brigades drawable: %.3f\n", record.MeanBrigades)
	fmt.Printf("  brigade histogram:\n")
	for k := 0; k <= maxKey(record.BrigadeHistogram); k++ {
		if n, ok := record.BrigadeHistogram[k]; ok {
			fmt.Printf("    %2d: %d\n", k, n)
		}
	}
}

func maxKey(h map[int]int) int {
	max := 0
	for k := range h {
		if k > max {
			max = k
		}
	}
	return max
}

// parseIntList parses a comma- or space-separated list of integers.
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
