package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mancala/game"
)

func TestRandomIsSeeded(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)

	pos := game.NewPosition()
	for i := 0; i < 20; i++ {
		moveA, _, _ := a.FindMove(pos)
		moveB, _, _ := b.FindMove(pos)
		require.Equal(t, moveA, moveB, "same seed should pick the same turn")

		next, err := pos.Play(moveA)
		require.NoError(t, err)
		pos = next
		if pos.GameOver() {
			break
		}
	}
}

func TestRandomPlaysLegalTurns(t *testing.T) {
	r := NewRandom(7)
	pos := game.NewPosition()

	for moves := 0; !pos.GameOver(); moves++ {
		require.Less(t, moves, 10000, "game must terminate")

		move, _, metric := r.FindMove(pos)

		turns := pos.LegalTurns()
		require.Equal(t, len(turns), metric.Nodes)

		legal := make([]game.Move, len(turns))
		for i, turn := range turns {
			legal[i] = turn.Move
		}
		require.Contains(t, legal, move)

		next, err := pos.Play(move)
		require.NoError(t, err)
		pos = next
	}
}

func TestRandomOnTerminalPosition(t *testing.T) {
	pos := game.MakePosition([game.BoardSize]int{0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 24}, game.White)

	move, score, _ := NewRandom(1).FindMove(pos)
	require.Nil(t, move)
	require.Equal(t, pos.FinalScore(), score)
}
