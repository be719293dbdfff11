package searcher

import "mancala/game"

// Search parameters.

// DefaultDepth is the standard engine strength: ten compound turns of
// lookahead.
const DefaultDepth = 10

// Infinity bounds every reachable score, so it serves as the open end
// of the alpha-beta window. Real scores never leave [-48, 48].
const Infinity = game.Score(10000000)
