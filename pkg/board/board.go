package board

import (
	"strconv"
	"strings"

	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Color is a cell value. Zero is reserved for empty cells.
type Color uint8

// Empty is the value of an unoccupied cell.
const Empty Color = 0

// Board is an N×N grid of colors.
type Board struct {
	size  int
	cells []Color
}

// New returns an empty board with the given edge length.
func New(size int) (*Board, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "board size must be positive, got %d", size)
	}
	return &Board{size: size, cells: make([]Color, size*size)}, nil
}

// Size returns the board's edge length N.
func (b *Board) Size() int { return b.size }

func (b *Board) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b *Board) index(x, y int) int { return y*b.size + x }

// At returns the color at (x, y).
func (b *Board) At(x, y int) (Color, error) {
	if !b.inside(x, y) {
		return Empty, errors.New(errors.ErrCodeInvalidCell, "cell (%d,%d) outside %dx%d board", x, y, b.size, b.size)
	}
	return b.cells[b.index(x, y)], nil
}

// CanPlace reports whether s can be placed with its origin at (x, y) in the
// given color without leaving the board or overlapping an occupied cell.
// The empty color can never be placed.
func (b *Board) CanPlace(s shape.Shape, c Color, x, y int) bool {
	if c == Empty {
		return false
	}
	for dx, dy := range s.Cells() {
		cx, cy := x+dx, y+dy
		if !b.inside(cx, cy) || b.cells[b.index(cx, cy)] != Empty {
			return false
		}
	}
	return true
}

// Place writes s in color c at origin (x, y). It returns false and leaves the
// board unchanged when [Board.CanPlace] is false.
func (b *Board) Place(s shape.Shape, c Color, x, y int) bool {
	if !b.CanPlace(s, c, x, y) {
		return false
	}
	for dx, dy := range s.Cells() {
		b.cells[b.index(x+dx, y+dy)] = c
	}
	return true
}

// CanPlaceAnywhere reports whether s fits at any origin on the board.
// Origins range over [0,N)×[0,N); the scan stops at the first fit.
func (b *Board) CanPlaceAnywhere(s shape.Shape) bool {
	_, _, ok := b.FirstFit(s)
	return ok
}

// FirstFit returns the first origin, in row-major order, at which s fits.
func (b *Board) FirstFit(s shape.Shape) (x, y int, ok bool) {
	// Any non-empty color works for the legality check.
	const anyColor Color = 1
	for y := range b.size {
		for x := range b.size {
			if b.CanPlace(s, anyColor, x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Fits returns every origin in [0,N)×[0,N), row-major, at which s fits.
func (b *Board) Fits(s shape.Shape) [][2]int {
	const anyColor Color = 1
	var out [][2]int
	for y := range b.size {
		for x := range b.size {
			if b.CanPlace(s, anyColor, x, y) {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool { return b.Filled() == 0 }

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, cells: append([]Color(nil), b.cells...)}
}

// Snapshot returns a copy of the grid indexed [y][x].
func (b *Board) Snapshot() [][]Color {
	out := make([][]Color, b.size)
	for y := range b.size {
		out[y] = append([]Color(nil), b.cells[y*b.size:(y+1)*b.size]...)
	}
	return out
}

// Equal reports whether two boards have the same size and cells.
func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i, c := range b.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders one line per row: '.' for empty cells, the color number
// (base 36) otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.size {
			c := b.cells[b.index(x, y)]
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.FormatInt(int64(c), 36))
			}
		}
	}
	return sb.String()
}
