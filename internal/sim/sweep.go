package sim

// Sweep describes a Cartesian parameter sweep. Every listed deck size is
// combined with every tutor count and every cycler-soul count; all other
// parameters come from Base. Empty lists fall back to the Base value, so
// the zero sweep is a single configuration point.
type Sweep struct {
	DeckSizes        []int
	TutorCounts      []int
	CyclerSoulCounts []int
	Base             SimulationConfig
}

// Points expands the sweep into an explicit sequence of configuration
// points. Generating the product as data keeps callers free to dispatch
// points in any order, or in parallel.
func (s Sweep) Points() []SimulationConfig {
	deckSizes := s.DeckSizes
	if len(deckSizes) == 0 {
		deckSizes = []int{s.Base.DeckSize}
	}
	tutorCounts := s.TutorCounts
	if len(tutorCounts) == 0 {
		tutorCounts = []int{s.Base.NTutors}
	}
	cyclerCounts := s.CyclerSoulCounts
	if len(cyclerCounts) == 0 {
		cyclerCounts = []int{s.Base.NCyclerSouls}
	}

	points := make([]SimulationConfig, 0, len(deckSizes)*len(tutorCounts)*len(cyclerCounts))
	for _, size := range deckSizes {
		for _, tutors := range tutorCounts {
			for _, cyclers := range cyclerCounts {
				cfg := s.Base
				cfg.DeckSize = size
				cfg.NTutors = tutors
				cfg.NCyclerSouls = cyclers
				points = append(points, cfg)
			}
		}
	}
	return points
}
