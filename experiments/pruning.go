package experiments

import "goban/experiments/metrics"

// RunPruningExperiment plays the same depth with and without alpha-beta
// cutoffs. Both sides use the same config in each game so that node counts
// per move can be compared at equal playing strength.
func RunPruningExperiment(s Settings, depth int) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: depth},
		{ID: 2, Depth: depth, NoPruning: true},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[0]},
		{configs[1], configs[1]},
	}

	return runExperiment("pruning", s, configs, matchUps, false)
}
