// Package searcher picks moves. Minimax walks the compound-turn tree
// to a fixed depth with alpha-beta pruning; Random plays a uniformly
// random legal turn and serves as the experiment baseline.
package searcher

import (
	"github.com/rs/zerolog/log"

	"mancala/experiments/metrics"
	"mancala/game"
)

// Minimax searches to a fixed depth, counting one whole compound turn
// as one ply. White maximizes and Black minimizes the same
// White-perspective score.
type Minimax struct {
	depth   int
	metrics metrics.Collector
}

type Option func(m *Minimax)

// WithCollector attaches a metrics collector to the searcher.
func WithCollector(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// WithMetrics attaches a fresh recording collector.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	m := &Minimax{
		depth:   depth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best complete turn for the player to move, its
// score, and the metrics of the search that found it. The move is nil
// exactly when the position is terminal.
func (m *Minimax) FindMove(pos game.Position) (game.Move, game.Score, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	move, score := m.search(pos, m.depth, -Infinity, Infinity)
	m.metrics.SetScore(score)
	metric := m.metrics.Complete()
	log.Debug().Msgf("depth %d search visited %d nodes in %s: move %v score %d",
		m.depth, metric.Nodes, metric.Duration, move, score)
	return move, score, metric
}

// search is fail-soft: it reports the exact extremal score it found
// even when that score lies outside the window.
func (m *Minimax) search(pos game.Position, depth int, alpha, beta game.Score) (game.Move, game.Score) {
	m.metrics.AddNode()

	turns := pos.LegalTurns()
	if len(turns) == 0 {
		m.metrics.AddTerminal()
		return nil, pos.FinalScore()
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return nil, pos.HeuristicScore()
	}

	if pos.Player() == game.White {
		return m.maximize(turns, depth, alpha, beta)
	}
	return m.minimize(turns, depth, alpha, beta)
}

func (m *Minimax) maximize(turns []game.Turn, depth int, alpha, beta game.Score) (game.Move, game.Score) {
	var best game.Move
	bestScore := -Infinity
	for _, turn := range turns {
		_, score := m.search(turn.Next, depth-1, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = turn.Move
		}
		if bestScore > beta {
			m.metrics.AddCutoff()
			break
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore
}

func (m *Minimax) minimize(turns []game.Turn, depth int, alpha, beta game.Score) (game.Move, game.Score) {
	var best game.Move
	bestScore := Infinity
	for _, turn := range turns {
		_, score := m.search(turn.Next, depth-1, alpha, beta)
		if score < bestScore {
			bestScore = score
			best = turn.Move
		}
		if bestScore < alpha {
			m.metrics.AddCutoff()
			break
		}
		if bestScore < beta {
			beta = bestScore
		}
	}
	return best, bestScore
}
