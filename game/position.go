package game

import "fmt"

// Position is a board plus the player to move. Construct one with
// NewPosition or MakePosition. All methods take value receivers, so
// every candidate sow and every search branch works on its own copy of
// the board.
type Position struct {
	board [BoardSize]int
	turn  Player
}

// NewPosition returns the standard starting position: four stones in
// every playing pocket, empty stores, White to move.
func NewPosition() Position {
	var p Position
	for i := range p.board {
		if i == WhiteStore || i == BlackStore {
			continue
		}
		p.board[i] = StartingStones
	}
	return p
}

// MakePosition builds an arbitrary position. Counts are taken as
// given; intended for tests and analysis.
func MakePosition(counts [BoardSize]int, toMove Player) Position {
	return Position{board: counts, turn: toMove}
}

// Player returns the side to move.
func (p Position) Player() Player {
	return p.turn
}

// Stones returns the count at an absolute board slot (0-13).
func (p Position) Stones(slot int) int {
	if slot < 0 || slot >= BoardSize {
		panic(fmt.Sprintf("board slot %d out of range", slot))
	}
	return p.board[slot]
}

// Total returns the number of stones on the whole board, stores
// included. Legal play never changes it.
func (p Position) Total() int {
	sum := 0
	for _, n := range p.board {
		sum += n
	}
	return sum
}

// opposite returns the playing pocket directly across the board.
func opposite(pocket int) int {
	return BoardSize - 2 - pocket
}

// Sow plays one atomic sow for the player to move: it empties pocket
// and distributes the stones forward around the ring, skipping the
// opponent's store. Landing the last stone in the mover's own store
// keeps the turn. Landing it in one of the mover's pockets that was
// empty captures that stone together with whatever sits in the
// opposite pocket. Any other landing passes the turn.
func (p Position) Sow(pocket int) (Position, error) {
	lo, hi := p.turn.row()
	if pocket < lo || pocket >= hi {
		return Position{}, ErrInvalidPocket
	}
	if p.board[pocket] == 0 {
		return Position{}, ErrEmptyPocket
	}

	own := p.turn.store()
	enemy := p.turn.Other().store()

	count := p.board[pocket]
	p.board[pocket] = 0
	cursor := pocket
	for count > 0 {
		cursor = (cursor + 1) % BoardSize
		if cursor == enemy {
			continue
		}
		p.board[cursor]++
		count--
	}

	if cursor == own {
		// Extra turn: the same player sows again.
		return p, nil
	}

	if p.board[cursor] == 1 && cursor >= lo && cursor < hi {
		opp := opposite(cursor)
		p.board[own] += p.board[opp] + 1
		p.board[opp] = 0
		p.board[cursor] = 0
	}

	p.turn = p.turn.Other()
	return p, nil
}
