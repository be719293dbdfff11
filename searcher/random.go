package searcher

import (
	"golang.org/x/exp/rand"

	"mancala/experiments/metrics"
	"mancala/game"
)

// Random plays a uniformly random complete turn. Two agents built from
// the same seed play identical games against identical opponents.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// FindMove picks one of the legal turns uniformly. The score reported
// is the heuristic of the chosen successor, and the metric records the
// turns considered.
func (r *Random) FindMove(pos game.Position) (game.Move, game.Score, metrics.SearchMetric) {
	turns := pos.LegalTurns()
	if len(turns) == 0 {
		return nil, pos.FinalScore(), metrics.SearchMetric{}
	}
	turn := turns[r.rng.Intn(len(turns))]
	return turn.Move, turn.Next.HeuristicScore(), metrics.SearchMetric{
		Nodes: len(turns),
		Score: turn.Next.HeuristicScore(),
	}
}
