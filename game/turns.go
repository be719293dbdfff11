package game

// Turn pairs a complete compound move with the position it leads to.
type Turn struct {
	Move Move
	Next Position
}

// LegalTurns enumerates every complete turn available to the player to
// move, in ascending pocket order at every level of the chain. The
// result is empty exactly when the position is terminal.
func (p Position) LegalTurns() []Turn {
	var turns []Turn
	lo, hi := p.turn.row()
	for pocket := lo; pocket < hi; pocket++ {
		next, err := p.Sow(pocket)
		if err != nil {
			continue
		}
		if next.turn != p.turn {
			turns = append(turns, Turn{Move: Move{pocket}, Next: next})
			continue
		}
		// The sow landed in the mover's store, so the turn continues
		// from the new position. A chain that reaches a position with
		// no legal continuation yields no complete turn at all.
		for _, t := range next.LegalTurns() {
			move := append(Move{pocket}, t.Move...)
			turns = append(turns, Turn{Move: move, Next: t.Next})
		}
	}
	return turns
}

// GameOver reports whether the player to move has no complete turn.
// Row emptiness is not the same condition: a mover can hold stones
// whose only chains dead-end in the store, which also ends the game.
func (p Position) GameOver() bool {
	return len(p.LegalTurns()) == 0
}

// Winner reports "white", "black" or "draw" once the game is over, and
// "" while it is still in progress.
func (p Position) Winner() string {
	if !p.GameOver() {
		return ""
	}
	score := p.FinalScore()
	switch {
	case score > 0:
		return White.String()
	case score < 0:
		return Black.String()
	default:
		return "draw"
	}
}
