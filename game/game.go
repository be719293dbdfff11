// Package game implements the Kalah variant of Mancala: a circular
// board of twelve playing pockets and two stores, sowing with the
// own-store extra turn and the capture rule, and generation of the
// compound turns that chained extra sows produce.
package game

import "errors"

// Board layout, indexed in play order: White's pockets come first,
// then White's store, then Black's pockets, then Black's store.
const (
	BoardSize      = 14
	PocketsPerSide = 6
	StartingStones = 4

	WhiteStore = 6
	BlackStore = 13

	TotalStones = 2 * PocketsPerSide * StartingStones
)

// Player identifies a side. White owns pockets 0-5 and the store at
// slot 6, Black owns pockets 7-12 and the store at slot 13.
type Player uint8

const (
	White Player = iota
	Black
)

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == White {
		return Black
	}
	return White
}

// store returns the index of p's scoring slot.
func (p Player) store() int {
	if p == White {
		return WhiteStore
	}
	return BlackStore
}

// row returns the half-open range [lo, hi) of p's playing pockets.
func (p Player) row() (int, int) {
	s := p.store()
	return s - PocketsPerSide, s
}

// Sowing errors. Both are recoverable: the shell re-prompts on them,
// and moves produced by the searcher never trigger them.
var (
	ErrInvalidPocket = errors.New("pocket is not one of the mover's playing pockets")
	ErrEmptyPocket   = errors.New("pocket has no stones")
)
