package game

// Score is a signed evaluation in stones from White's perspective:
// positive favors White, negative favors Black.
type Score int

// HeuristicScore is the mid-game evaluation: White's store minus
// Black's store. Stones still on the rows are ignored; sweeping them
// is only valid once the game has ended.
func (p Position) HeuristicScore() Score {
	return Score(p.board[WhiteStore] - p.board[BlackStore])
}

// FinalScore is the end-of-game evaluation: each side keeps its store
// plus the stones left on its row, White minus Black.
func (p Position) FinalScore() Score {
	white := p.board[WhiteStore] + p.rowTotal(White)
	black := p.board[BlackStore] + p.rowTotal(Black)
	return Score(white - black)
}

func (p Position) rowTotal(pl Player) int {
	lo, hi := pl.row()
	sum := 0
	for i := lo; i < hi; i++ {
		sum += p.board[i]
	}
	return sum
}
