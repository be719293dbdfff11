package game

// Move is one complete turn: the ordered pockets to sow. Every pocket
// before the last landed its final stone in the mover's own store,
// which is what granted the follow-up sow. A nil Move means no move;
// the searcher returns it for terminal positions.
type Move []int

// Play applies a compound move, sowing each pocket in order. Each sow
// is validated exactly as if entered by hand. An empty move returns
// the position unchanged.
func (p Position) Play(m Move) (Position, error) {
	pos := p
	for _, pocket := range m {
		next, err := pos.Sow(pocket)
		if err != nil {
			return Position{}, err
		}
		pos = next
	}
	return pos, nil
}
