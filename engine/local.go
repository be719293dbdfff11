package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mancala/experiments/metrics"
	"mancala/game"
)

// Engine plays one game between two agents on the standard board.
type Engine struct {
	pos   game.Position
	white Agent
	black Agent
}

func NewLocal(white, black Agent) *Engine {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	return &Engine{
		pos:   game.NewPosition(),
		white: white,
		black: black,
	}
}

// Run executes the whole game loop and returns the winner together
// with the game metric and one move metric per compound turn played.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	log.Debug().Msgf("%s is starting", e.pos.Player())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.pos.GameOver() && step < MaxMoves {
		player := e.pos.Player()

		move, score, searchMetric := e.agent(player).FindMove(e.pos)
		if len(move) == 0 {
			// The position is not terminal, so the agent must move.
			panic(fmt.Sprintf("%s agent returned no move", player))
		}
		next, err := e.pos.Play(move)
		if err != nil {
			panic(fmt.Sprintf("%s agent played illegal move %v: %v", player, move, err))
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s plays %v (score %d)", step, player, move, score)

		e.pos = next
	}

	winner := e.pos.Winner()
	endTime := time.Now()
	log.Debug().Msgf("game over after %d moves: %s (final score %+d)",
		step, result(winner), e.pos.FinalScore())

	gameMetric := metrics.GameMetric{
		Winner:     winner,
		FinalScore: e.pos.FinalScore(),
		TotalMoves: step,
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
	}
	return winner, gameMetric, moveMetrics
}

func (e *Engine) agent(p game.Player) Agent {
	if p == game.White {
		return e.white
	}
	return e.black
}

func result(winner string) string {
	if winner == "draw" {
		return "a draw"
	}
	return winner + " wins"
}
