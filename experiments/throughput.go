package experiments

import (
	"jump61/experiments/metrics"
	"jump61/meta"
)

// ThroughputExperiment pits root-parallel searchers of equal depth against
// the sequential baseline. Scores match the baseline, so the interesting
// columns are duration and nodes per move.
func ThroughputExperiment(dir string, games int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.DEPTH, Goroutines: 1}
	parallelConfigs := []metrics.AgentConfig{
		{ID: 1, Depth: meta.DEPTH, Goroutines: 2},
		{ID: 2, Depth: meta.DEPTH, Goroutines: 4},
		{ID: 3, Depth: meta.DEPTH, Goroutines: meta.GO_ROUTINES},
		{ID: 4, Depth: meta.DEPTH, Goroutines: 2 * meta.GO_ROUTINES},
	}

	// Each matchup pairs an agent against the baseline sequential agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Experiment{
		Name:     "throughput",
		Dir:      dir,
		Games:    games,
		Size:     meta.BOARD_SIZE,
		MaxMoves: meta.MAX_MOVES,
		Seed:     1,
		Configs:  append(parallelConfigs, baseline),
		MatchUps: matchUps,
	}
}
