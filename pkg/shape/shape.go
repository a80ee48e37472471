package shape

import (
	"iter"
	"strings"

	"github.com/matzehuels/blocks/pkg/errors"
)

// MaxCells is the largest bounding box area a shape may have.
const MaxCells = 64

// Shape is an immutable polyomino template.
//
// The zero value is not usable; construct shapes with [New] or [Parse].
type Shape struct {
	name   string
	width  int
	height int
	bits   uint64 // row-major occupancy, bit y*width+x
}

// New builds a shape from a row-major mask of width*height booleans.
// The mask must contain at least one filled cell.
func New(name string, width, height int, mask []bool) (Shape, error) {
	if width <= 0 || height <= 0 {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q: dimensions must be positive, got %dx%d", name, width, height)
	}
	if width*height > MaxCells {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q: %dx%d exceeds %d cells", name, width, height, MaxCells)
	}
	if len(mask) != width*height {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q: mask has %d cells, want %d", name, len(mask), width*height)
	}

	s := Shape{name: name, width: width, height: height}
	for i, filled := range mask {
		if filled {
			s.bits |= 1 << uint(i)
		}
	}
	if s.bits == 0 {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q has no filled cells", name)
	}
	return s, nil
}

// Parse builds a shape from row strings, top row first. Filled cells are
// written as '1' or '#', empty cells as '0' or '.'. All rows must have the
// same length.
func Parse(name string, rows ...string) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q has no rows", name)
	}
	width := len(rows[0])
	mask := make([]bool, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q: row %d has length %d, want %d", name, y, len(row), width)
		}
		for x := range len(row) {
			switch row[x] {
			case '1', '#':
				mask = append(mask, true)
			case '0', '.':
				mask = append(mask, false)
			default:
				return Shape{}, errors.New(errors.ErrCodeInvalidShape, "shape %q: invalid cell %q at (%d,%d)", name, row[x], x, y)
			}
		}
	}
	return New(name, width, len(rows), mask)
}

// MustParse is like [Parse] but panics on error. It is intended for
// package-level shape tables.
func MustParse(name string, rows ...string) Shape {
	s, err := Parse(name, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the shape's display name.
func (s Shape) Name() string { return s.name }

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int { return s.width }

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int { return s.height }

// Filled reports whether the cell at column x, row y is occupied.
// Cells outside the bounding box are never filled.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	return s.bits&(1<<uint(y*s.width+x)) != 0
}

// Cells yields the (x, y) offsets of every filled cell, row by row.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := range s.height {
			for x := range s.width {
				if s.Filled(x, y) && !yield(x, y) {
					return
				}
			}
		}
	}
}

// Area returns the number of filled cells.
func (s Shape) Area() int {
	n := 0
	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Rows renders the mask as row strings using '#' and '.'.
func (s Shape) Rows() []string {
	rows := make([]string, s.height)
	var b strings.Builder
	for y := range s.height {
		b.Reset()
		for x := range s.width {
			if s.Filled(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns the rows joined by newlines.
func (s Shape) String() string {
	return strings.Join(s.Rows(), "\n")
}
