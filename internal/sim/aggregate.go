package sim

import (
	"github.com/baboonytim/redsim/internal/game"
)

// SummaryRecord is the aggregated statistic for one configuration point.
// It is created once per point and never mutated after aggregation.
type SummaryRecord struct {
	Config SimulationConfig `json:"config"`
	Trials int              `json:"trials"`

	// SuccessProbability is the fraction of trials with the macguffin in
	// play by turn one.
	SuccessProbability float64 `json:"success_probability"`

	// MeanBrigades is the mean number of unique brigades the opponent
	// draw engine could see, blocked trials counting as zero.
	MeanBrigades float64 `json:"mean_brigades_drawable"`

	// BrigadeHistogram counts trials per brigades-drawable value.
	BrigadeHistogram map[int]int `json:"brigade_histogram"`
}

// Aggregate reduces a batch of trial outcomes for one configuration point.
// An empty batch is a ConfigError, never a division by zero.
func Aggregate(cfg SimulationConfig, outcomes []game.TrialOutcome) (SummaryRecord, error) {
	if len(outcomes) == 0 {
		return SummaryRecord{}, &ConfigError{Param: "n_simulations", Reason: "no trial outcomes to aggregate"}
	}

	successes := 0
	brigadeSum := 0
	hist := make(map[int]int)
	for _, out := range outcomes {
		if out.MacguffinInPlay {
			successes++
		}
		brigadeSum += out.BrigadesDrawable
		hist[out.BrigadesDrawable]++
	}

	n := float64(len(outcomes))
	return SummaryRecord{
		Config:             cfg,
		Trials:             len(outcomes),
		SuccessProbability: float64(successes) / n,
		MeanBrigades:       float64(brigadeSum) / n,
		BrigadeHistogram:   hist,
	}, nil
}

// MergeHistograms combines per-worker histograms. Histogram merging is
// associative and commutative, so partial results combine in any order.
func MergeHistograms(dst, src map[int]int) map[int]int {
	if dst == nil {
		dst = make(map[int]int, len(src))
	}
	for k, v := range src {
		dst[k] += v
	}
	return dst
}
