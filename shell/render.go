package shell

import (
	"fmt"
	"strconv"
	"strings"

	"mancala/game"
)

const divider = "+----+----+----+----+----+----+"

// Render draws the position from White's seat: Black's row on top
// running right to left, White's row beneath running left to right,
// each store at its owner's end. Pockets are labeled 1-6 from each
// player's own perspective.
func Render(pos game.Position) string {
	var b strings.Builder

	b.WriteString("         6    5    4    3    2    1\n")
	b.WriteString("      " + divider + "\n")

	b.WriteString("black |")
	for pocket := game.BlackStore - 1; pocket > game.WhiteStore; pocket-- {
		fmt.Fprintf(&b, " %2d |", pos.Stones(pocket))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, " [%2d] %s [%2d]\n",
		pos.Stones(game.BlackStore), divider, pos.Stones(game.WhiteStore))

	b.WriteString("white |")
	for pocket := 0; pocket < game.WhiteStore; pocket++ {
		fmt.Fprintf(&b, " %2d |", pos.Stones(pocket))
	}
	b.WriteString("\n")

	b.WriteString("      " + divider + "\n")
	b.WriteString("         1    2    3    4    5    6\n")

	if pos.GameOver() {
		b.WriteString("game over\n")
	} else {
		fmt.Fprintf(&b, "%s to move\n", pos.Player())
	}
	return b.String()
}

// pocketIndex maps a player's 1-6 pocket label to its board slot.
func pocketIndex(p game.Player, label int) (int, bool) {
	if label < 1 || label > game.PocketsPerSide {
		return 0, false
	}
	if p == game.White {
		return label - 1, true
	}
	return game.WhiteStore + label, true
}

// labels formats a compound move as the mover's own pocket numbers.
func labels(p game.Player, m game.Move) string {
	parts := make([]string, len(m))
	for i, pocket := range m {
		if p == game.White {
			parts[i] = strconv.Itoa(pocket + 1)
		} else {
			parts[i] = strconv.Itoa(pocket - game.WhiteStore)
		}
	}
	return strings.Join(parts, " ")
}
