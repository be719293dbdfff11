package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	pos := NewPosition()

	require.Equal(t, White, pos.Player(), "white moves first")
	require.Equal(t, TotalStones, pos.Total())
	for slot := 0; slot < BoardSize; slot++ {
		if slot == WhiteStore || slot == BlackStore {
			require.Zero(t, pos.Stones(slot), "stores start empty")
			continue
		}
		require.Equal(t, StartingStones, pos.Stones(slot), "pocket %d", slot)
	}
}

func TestStonesPanicsOutOfRange(t *testing.T) {
	pos := NewPosition()
	require.Panics(t, func() { pos.Stones(-1) })
	require.Panics(t, func() { pos.Stones(BoardSize) })
}

func TestSow(t *testing.T) {
	t.Run("plain sow passes the turn", func(t *testing.T) {
		next, err := NewPosition().Sow(0)
		require.NoError(t, err)

		require.Zero(t, next.Stones(0), "source pocket is emptied")
		for pocket := 1; pocket <= 4; pocket++ {
			require.Equal(t, 5, next.Stones(pocket))
		}
		require.Equal(t, 4, next.Stones(5))
		require.Zero(t, next.Stones(WhiteStore))
		require.Equal(t, Black, next.Player())
		require.Equal(t, TotalStones, next.Total())
	})

	t.Run("landing in the own store keeps the turn", func(t *testing.T) {
		next, err := NewPosition().Sow(2)
		require.NoError(t, err)

		require.Equal(t, 1, next.Stones(WhiteStore))
		require.Equal(t, White, next.Player(), "mover sows again")
	})

	t.Run("black sows its own row and store", func(t *testing.T) {
		pos := MakePosition(NewPosition().board, Black)
		next, err := pos.Sow(9)
		require.NoError(t, err)

		require.Equal(t, 1, next.Stones(BlackStore))
		require.Equal(t, Black, next.Player(), "mover sows again")
	})

	t.Run("the opponent's store is skipped", func(t *testing.T) {
		pos := MakePosition([BoardSize]int{2, 2, 0, 0, 0, 9, 0, 4, 4, 4, 4, 4, 4, 0}, White)
		next, err := pos.Sow(5)
		require.NoError(t, err)

		require.Zero(t, next.Stones(BlackStore), "no stone lands in the enemy store")
		require.Equal(t, 3, next.Stones(0), "sow wraps past the enemy store")
		require.Equal(t, 3, next.Stones(1))
		require.Equal(t, 1, next.Stones(WhiteStore))
		require.Equal(t, Black, next.Player())
	})

	t.Run("landing alone in an own pocket captures the opposite pocket", func(t *testing.T) {
		pos := MakePosition([BoardSize]int{2, 4, 0, 0, 0, 0, 0, 4, 4, 4, 5, 4, 4, 0}, White)
		next, err := pos.Sow(0)
		require.NoError(t, err)

		require.Equal(t, 6, next.Stones(WhiteStore), "landing stone plus five opposite stones")
		require.Zero(t, next.Stones(2), "landing pocket swept")
		require.Zero(t, next.Stones(10), "opposite pocket swept")
		require.Equal(t, Black, next.Player(), "capture does not grant an extra turn")
		require.Equal(t, pos.Total(), next.Total())
	})

	t.Run("capture fires even when the opposite pocket is empty", func(t *testing.T) {
		pos := MakePosition([BoardSize]int{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0}, White)
		next, err := pos.Sow(0)
		require.NoError(t, err)

		require.Equal(t, 1, next.Stones(WhiteStore), "only the landing stone is banked")
		require.Zero(t, next.Stones(2))
		require.Equal(t, Black, next.Player())
	})

	t.Run("a big sow wraps past its own emptied source", func(t *testing.T) {
		/* 13 stones from pocket 0 reach every slot except the enemy
		   store and drop the last stone back into the emptied source,
		   which is a fresh single stone in the mover's row and
		   therefore a capture. */
		pos := MakePosition([BoardSize]int{13, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, White)
		next, err := pos.Sow(0)
		require.NoError(t, err)

		require.Zero(t, next.Stones(0))
		require.Zero(t, next.Stones(12), "opposite pocket captured")
		require.Zero(t, next.Stones(BlackStore))
		require.Equal(t, 3, next.Stones(WhiteStore))
		for _, pocket := range []int{1, 2, 3, 4, 5, 7, 8, 9, 10, 11} {
			require.Equal(t, 1, next.Stones(pocket), "pocket %d", pocket)
		}
		require.Equal(t, Black, next.Player())
		require.Equal(t, 13, next.Total())
	})
}

func TestSowErrors(t *testing.T) {
	start := NewPosition()

	t.Run("own store is not sowable", func(t *testing.T) {
		_, err := start.Sow(WhiteStore)
		require.ErrorIs(t, err, ErrInvalidPocket)
	})

	t.Run("opponent pockets are not sowable", func(t *testing.T) {
		_, err := start.Sow(7)
		require.ErrorIs(t, err, ErrInvalidPocket)

		black := MakePosition(start.board, Black)
		_, err = black.Sow(0)
		require.ErrorIs(t, err, ErrInvalidPocket)
	})

	t.Run("out of range pockets are invalid", func(t *testing.T) {
		for _, pocket := range []int{-1, BlackStore, BoardSize, 99} {
			_, err := start.Sow(pocket)
			require.ErrorIs(t, err, ErrInvalidPocket, "pocket %d", pocket)
		}
	})

	t.Run("empty pockets are not sowable", func(t *testing.T) {
		pos := MakePosition([BoardSize]int{4, 4, 0, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0}, White)
		_, err := pos.Sow(2)
		require.ErrorIs(t, err, ErrEmptyPocket)
	})
}
