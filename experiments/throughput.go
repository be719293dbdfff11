package experiments

import "mancala/experiments/metrics"

// RunThroughputExperiment measures nodes searched per move across
// depths. Each depth plays a single game against itself: same strength
// on both sides keeps game lengths comparable.
func RunThroughputExperiment(resultsDir string) {
	const gamesPerMatchup = 1

	// Same config for both players in each game
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	runExperiment("throughput", resultsDir, gamesPerMatchup, depthConfigs, matchUps)
}
