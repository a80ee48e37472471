package autoplay

import (
	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Greedy picks the move with the highest immediate score. Ties are broken
// by the fewest isolated empty cells left behind, then by the fewest
// occupied cells, then by slot and row-major origin.
type Greedy struct{}

type evaluation struct {
	delta  int
	holes  int
	filled int
}

func (a evaluation) better(b evaluation) bool {
	if a.delta != b.delta {
		return a.delta > b.delta
	}
	if a.holes != b.holes {
		return a.holes < b.holes
	}
	return a.filled < b.filled
}

// Choose implements [Strategy].
func (Greedy) Choose(e *game.Engine) (Move, bool) {
	base := e.Board()
	var (
		best     Move
		bestEval evaluation
		found    bool
	)
	legalMoves(e, func(m Move, s shape.Shape, c board.Color) {
		ev := evaluate(base, s, c, m.X, m.Y)
		if !found || ev.better(bestEval) {
			best, bestEval, found = m, ev, true
		}
	})
	return best, found
}

// Best returns the [Greedy] choice for e.
func Best(e *game.Engine) (Move, bool) {
	return Greedy{}.Choose(e)
}

func evaluate(base *board.Board, s shape.Shape, c board.Color, x, y int) evaluation {
	b := base.Clone()
	if !b.Place(s, c, x, y) {
		return evaluation{delta: -1}
	}
	lines := b.DetectFullLines()
	b.ClearLines(lines)
	return evaluation{
		delta:  game.ScoreDelta(len(lines.Rows), len(lines.Columns), b.Size()),
		holes:  isolatedHoles(b.Snapshot()),
		filled: b.Filled(),
	}
}

// isolatedHoles counts empty cells whose four neighbours are all occupied or
// off the board. Only a single-cell piece can fill them.
func isolatedHoles(grid [][]board.Color) int {
	n := len(grid)
	blocked := func(x, y int) bool {
		return x < 0 || y < 0 || x >= n || y >= n || grid[y][x] != board.Empty
	}
	holes := 0
	for y := range n {
		for x := range n {
			if grid[y][x] != board.Empty {
				continue
			}
			if blocked(x-1, y) && blocked(x+1, y) && blocked(x, y-1) && blocked(x, y+1) {
				holes++
			}
		}
	}
	return holes
}
