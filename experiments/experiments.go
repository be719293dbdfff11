// Package experiments runs scripted agent matchups and stores their
// metrics as CSV files for offline analysis.
package experiments

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/searcher"
)

const DefaultGames = 30 // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 2},
	{ID: 2, Kind: "minimax", Depth: 4},
	{ID: 3, Kind: "minimax", Depth: 6},
	{ID: 4, Kind: "minimax", Depth: 8},
	{ID: 5, Kind: "minimax", Depth: 10},
}

// RunDepthExperiment measures how playing strength scales with search
// depth: every depth config plays a fixed-depth baseline and a random
// baseline. Colors alternate between games so neither config owns the
// first move.
func RunDepthExperiment(games int, seed uint64, resultsDir string) {
	if games <= 0 {
		games = DefaultGames
	}
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 4}
	random := metrics.AgentConfig{ID: 6, Kind: "random", Seed: seed}

	// Each matchup pairs a depth config against one of the baselines
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
		matchUps = append(matchUps, []metrics.AgentConfig{random, config})
	}

	configs := append([]metrics.AgentConfig{baseline}, depthConfigs...)
	configs = append(configs, random)

	runExperiment("depth_to_strength", resultsDir, games, configs, matchUps)
}

func runExperiment(name, resultsDir string, games int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	log.Info().Msgf("starting %s experiment: %d matchups, %d games each...", name, len(matchUps), games)

	type result struct {
		white       metrics.AgentConfig
		black       metrics.AgentConfig
		gameMetric  metrics.GameMetric
		moveMetrics []metrics.MoveMetric
	}
	results := make([]result, len(matchUps)*games)

	// Games are independent, so run them on every core. Each goroutine
	// writes only its own slot.
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for mi, matchup := range matchUps {
		for i := 0; i < games; i++ {
			i := i // pin per-iteration value for the closure under go < 1.22
			slot := mi*games + i
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}
			g.Go(func() error {
				winner, gameMetric, moveMetrics := runGame(white, black, uint64(i))
				results[slot] = result{
					white:       white,
					black:       black,
					gameMetric:  gameMetric,
					moveMetrics: moveMetrics,
				}
				log.Info().Msgf("completed %s game %d of %d with winner: %s",
					name, slot+1, len(results), winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		panic(fmt.Sprintf("failed to finish games: %v", err))
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for id, r := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			White:      r.white.ID,
			Black:      r.black.ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}

	// Store experiment metadata
	writer, err := metrics.NewWriter(resultsDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
}

// runGame executes a single game between two agent configs.
func runGame(white, black metrics.AgentConfig, gameIndex uint64) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocal(createAgent(white, gameIndex), createAgent(black, gameIndex))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, gameIndex uint64) engine.Agent {
	switch config.Kind {
	case "random":
		// Shift the seed per game so repeats differ but the whole
		// experiment stays reproducible.
		return searcher.NewRandom(config.Seed + gameIndex)
	default:
		return searcher.NewMinimax(config.Depth, searcher.WithMetrics())
	}
}
