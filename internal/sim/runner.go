package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/baboonytim/redsim/internal/game"
	"github.com/baboonytim/redsim/internal/log"
)

// Runner repeats the trial simulator across a sweep of configuration
// points. Points are independent, so they run on a bounded worker pool;
// per-trial generators are seeded from (base seed, point index, trial
// index), which keeps results identical regardless of worker interleaving.
type Runner struct {
	// Workers bounds the number of configuration points evaluated
	// concurrently. Zero or negative means GOMAXPROCS.
	Workers int

	// OnRecord, when set, is called as each configuration point
	// completes. Calls are serialized but arrive in completion order,
	// not point order.
	OnRecord func(SummaryRecord)
}

// Run evaluates every point of the sweep and returns one summary record per
// point, in point order. All points are validated before any trial runs.
func (r *Runner) Run(ctx context.Context, sweep Sweep) ([]SummaryRecord, error) {
	points := sweep.Points()
	if len(points) == 0 {
		return nil, &ConfigError{Param: "sweep", Reason: "no configuration points"}
	}
	for i := range points {
		if err := points[i].Validate(); err != nil {
			return nil, err
		}
		if points[i].Seed == 0 {
			seed, err := NewSeed()
			if err != nil {
				return nil, err
			}
			points[i].Seed = seed
		}
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(points) {
		workers = len(points)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]SummaryRecord, len(points))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				rec, err := runPoint(ctx, i, points[i])
				if err != nil {
					cfg := points[i]
					fail(fmt.Errorf("configuration point %d (deck_size=%d n_tutors=%d n_cycler_souls=%d): %w",
						i, cfg.DeckSize, cfg.NTutors, cfg.NCyclerSouls, err))
					return
				}
				results[i] = rec
				if r.OnRecord != nil {
					mu.Lock()
					r.OnRecord(rec)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range points {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// runPoint executes every trial of one configuration point and aggregates
// the outcomes. A structural trial error aborts the whole point.
func runPoint(ctx context.Context, pointIndex int, cfg SimulationConfig) (SummaryRecord, error) {
	template, err := GenerateDeck(cfg)
	if err != nil {
		return SummaryRecord{}, err
	}

	outcomes := make([]game.TrialOutcome, 0, cfg.NSimulations)
	for i := 0; i < cfg.NSimulations; i++ {
		if i%4096 == 0 && ctx.Err() != nil {
			return SummaryRecord{}, ctx.Err()
		}
		trial := game.NewTrial(template, cfg.trialConfig(), trialRNG(cfg.Seed, pointIndex, i), nil)
		trial.SetIndex(i)
		out, err := trial.Run()
		if err != nil {
			return SummaryRecord{}, fmt.Errorf("trial %d: %w", i, err)
		}
		outcomes = append(outcomes, out)
	}
	return Aggregate(cfg, outcomes)
}

// trialRNG builds the trial-scoped generator. Every trial owns its own
// source; nothing is shared across trials.
func trialRNG(seed int64, pointIndex, trialIndex int) *rand.Rand {
	stream := uint64(pointIndex)<<32 | uint64(uint32(trialIndex))
	return rand.New(rand.NewPCG(uint64(seed), stream))
}

// AnalyzeDeck runs N trials over a fixed, resolved decklist instead of a
// generated template, reduced to a single summary record. The record's config carries
// the deck size of the supplied list. A non-nil logger receives every
// trial event, which is only sensible for small trial counts.
func AnalyzeDeck(ctx context.Context, cfg SimulationConfig, cards []game.Card, logger log.EventLogger) (SummaryRecord, error) {
	if cfg.NSimulations <= 0 {
		return SummaryRecord{}, &ConfigError{Param: "n_simulations", Reason: fmt.Sprintf("must be positive, got %d", cfg.NSimulations)}
	}
	if cfg.CrowdsIneffectivenessWeight < 0 || cfg.CrowdsIneffectivenessWeight > 1 {
		return SummaryRecord{}, &ConfigError{Param: "crowds_ineffectiveness_weight", Reason: "must be in [0,1]"}
	}
	if cfg.MatthewFizzleRate < 0 || cfg.MatthewFizzleRate > 1 {
		return SummaryRecord{}, &ConfigError{Param: "matthew_fizzle_rate", Reason: "must be in [0,1]"}
	}
	if len(cards) < game.OpeningHandSize+game.TurnDrawSize {
		return SummaryRecord{}, &ConfigError{
			Param:  "deck",
			Reason: fmt.Sprintf("%d cards cannot cover the opening sequence", len(cards)),
		}
	}
	if cfg.Seed == 0 {
		seed, err := NewSeed()
		if err != nil {
			return SummaryRecord{}, err
		}
		cfg.Seed = seed
	}
	cfg.DeckSize = len(cards)

	outcomes := make([]game.TrialOutcome, 0, cfg.NSimulations)
	for i := 0; i < cfg.NSimulations; i++ {
		if i%4096 == 0 && ctx.Err() != nil {
			return SummaryRecord{}, ctx.Err()
		}
		trial := game.NewTrial(cards, cfg.trialConfig(), trialRNG(cfg.Seed, 0, i), logger)
		trial.SetIndex(i)
		out, err := trial.Run()
		if err != nil {
			return SummaryRecord{}, fmt.Errorf("trial %d: %w", i, err)
		}
		outcomes = append(outcomes, out)
	}
	return Aggregate(cfg, outcomes)
}
