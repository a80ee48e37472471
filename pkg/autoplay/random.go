package autoplay

import (
	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Random picks uniformly among all legal moves.
type Random struct {
	Rand shape.Rand
}

// Choose implements [Strategy].
func (r Random) Choose(e *game.Engine) (Move, bool) {
	var moves []Move
	legalMoves(e, func(m Move, _ shape.Shape, _ board.Color) {
		moves = append(moves, m)
	})
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[r.Rand.IntN(len(moves))], true
}
