// Package engine drives complete games between two move-producing
// agents and records per-game and per-move metrics.
package engine

import (
	"mancala/experiments/metrics"
	"mancala/game"
)

// MaxMoves stops a runaway game. Legal play always finishes far
// earlier; hitting the cap means an agent is broken.
const MaxMoves = 10000

// Agent produces a complete compound turn for the position it is
// given. Implementations must return a move drawn from the position's
// legal turns, or nil when there are none.
type Agent interface {
	FindMove(pos game.Position) (game.Move, game.Score, metrics.SearchMetric)
}
