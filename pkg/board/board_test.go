package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/shape"
)

func newBoard(t *testing.T, n int) *Board {
	t.Helper()
	b, err := New(n)
	require.NoError(t, err)
	return b
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b *Board, y int, c Color, except ...int) {
	for x := range b.size {
		b.cells[b.index(x, y)] = c
	}
	for _, x := range except {
		b.cells[b.index(x, y)] = Empty
	}
}

func fillColumn(b *Board, x int, c Color, except ...int) {
	for y := range b.size {
		b.cells[b.index(x, y)] = c
	}
	for _, y := range except {
		b.cells[b.index(x, y)] = Empty
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := New(n)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "size %d", n)
	}
}

func TestCanPlace(t *testing.T) {
	square := shape.MustParse("square2", "11", "11")
	bar4 := shape.MustParse("bar4h", "1111")
	// Empty bottom-left corner.
	corner := shape.MustParse("corner", "11", "01")

	tests := []struct {
		name  string
		setup func(b *Board)
		s     shape.Shape
		color Color
		x, y  int
		want  bool
	}{
		{"origin", nil, square, 1, 0, 0, true},
		{"bottom right", nil, square, 1, 6, 6, true},
		{"x one past", nil, square, 1, 7, 0, false},
		{"y one past", nil, square, 1, 0, 7, false},
		{"negative x", nil, square, 1, -1, 0, false},
		{"negative y", nil, square, 1, 0, -1, false},
		{"bar flush right", nil, bar4, 1, 4, 3, true},
		{"bar overhang", nil, bar4, 1, 5, 3, false},
		{"empty color", nil, square, Empty, 0, 0, false},
		{"collision", func(b *Board) { b.cells[b.index(1, 1)] = 3 }, square, 1, 0, 0, false},
		{"adjacent", func(b *Board) { b.cells[b.index(2, 2)] = 3 }, square, 1, 0, 0, true},
		{"hole under empty corner cell", func(b *Board) { b.cells[b.index(0, 1)] = 3 }, corner, 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, 8)
			if tt.setup != nil {
				tt.setup(b)
			}
			assert.Equal(t, tt.want, b.CanPlace(tt.s, tt.color, tt.x, tt.y))
		})
	}
}

func TestPlaceWritesExactlyTheMask(t *testing.T) {
	b := newBoard(t, 8)
	ell := shape.MustParse("ell", "100", "111")

	require.True(t, b.Place(ell, 5, 2, 3))

	for y := range 8 {
		for x := range 8 {
			c, err := b.At(x, y)
			require.NoError(t, err)
			want := Empty
			if ell.Filled(x-2, y-3) {
				want = 5
			}
			assert.Equal(t, want, c, "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 4, b.Filled())
}

func TestPlaceIsAtomic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	cat := shape.Default()

	rejected := 0
	for trial := range 500 {
		b := newBoard(t, 8)
		for i := range b.cells {
			if r.IntN(3) == 0 {
				b.cells[i] = Color(1 + r.IntN(7))
			}
		}
		s, err := cat.Get(cat.RandomID(r))
		require.NoError(t, err)
		x, y := r.IntN(10)-1, r.IntN(10)-1

		if b.CanPlace(s, 4, x, y) {
			continue
		}
		rejected++
		before := b.Clone()
		assert.False(t, b.Place(s, 4, x, y), "trial %d", trial)
		assert.True(t, before.Equal(b), "trial %d: board changed on rejected place", trial)
	}
	assert.Positive(t, rejected)
}

func TestDetectAndClearSingleRow(t *testing.T) {
	b := newBoard(t, 8)
	fillRow(b, 5, 2)
	b.cells[b.index(3, 4)] = 6

	lines := b.DetectFullLines()
	assert.Equal(t, []int{5}, lines.Rows)
	assert.Empty(t, lines.Columns)
	assert.Equal(t, 1, lines.Count())

	b.ClearLines(lines)
	for x := range 8 {
		c, _ := b.At(x, 5)
		assert.Equal(t, Empty, c)
	}
	c, _ := b.At(3, 4)
	assert.Equal(t, Color(6), c, "cells off the cleared row must survive")
	assert.Equal(t, 1, b.Filled())
}

func TestDetectColumns(t *testing.T) {
	b := newBoard(t, 8)
	fillColumn(b, 0, 1)
	fillColumn(b, 7, 1)
	fillColumn(b, 3, 1, 4)

	lines := b.DetectFullLines()
	assert.Empty(t, lines.Rows)
	assert.Equal(t, []int{0, 7}, lines.Columns)
}

func TestClearIntersectionOnce(t *testing.T) {
	b := newBoard(t, 8)
	fillRow(b, 2, 3)
	fillColumn(b, 6, 4)
	b.cells[b.index(0, 0)] = 1

	lines := b.DetectFullLines()
	require.Equal(t, []int{2}, lines.Rows)
	require.Equal(t, []int{6}, lines.Columns)

	b.ClearLines(lines)
	assert.Equal(t, 1, b.Filled())
	c, _ := b.At(6, 2)
	assert.Equal(t, Empty, c)

	// Clearing again is a no-op.
	b.ClearLines(lines)
	assert.Equal(t, 1, b.Filled())
}

func TestClearLinesIgnoresOutOfRange(t *testing.T) {
	b := newBoard(t, 4)
	fillRow(b, 0, 1)
	b.ClearLines(Lines{Rows: []int{-1, 4}, Columns: []int{9}})
	assert.Equal(t, 4, b.Filled())
}

func TestCanPlaceAnywhere(t *testing.T) {
	dot := shape.MustParse("dot", "1")
	square3 := shape.MustParse("square3", "111", "111", "111")

	b := newBoard(t, 8)
	assert.True(t, b.CanPlaceAnywhere(square3))

	// Checkerboard leaves single holes only.
	for y := range 8 {
		for x := range 8 {
			if (x+y)%2 == 0 {
				b.cells[b.index(x, y)] = 1
			}
		}
	}
	assert.False(t, b.CanPlaceAnywhere(square3))
	assert.True(t, b.CanPlaceAnywhere(dot))

	x, y, ok := b.FirstFit(dot)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
	assert.Len(t, b.Fits(dot), 32)

	for i := range b.cells {
		b.cells[i] = 2
	}
	assert.False(t, b.CanPlaceAnywhere(dot))
	assert.Empty(t, b.Fits(dot))
}

func TestFitsRowMajor(t *testing.T) {
	b := newBoard(t, 4)
	bar := shape.MustParse("bar3h", "111")
	fillRow(b, 0, 1, 3)

	fits := b.Fits(bar)
	require.Len(t, fits, 6)
	assert.Equal(t, [][2]int{{0, 1}, {1, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}}, fits)

	x, y, ok := b.FirstFit(bar)
	require.True(t, ok)
	assert.Equal(t, fits[0], [2]int{x, y})
}

func TestAtOutOfRange(t *testing.T) {
	b := newBoard(t, 8)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		_, err := b.At(xy[0], xy[1])
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidCell), "cell %v", xy)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := newBoard(t, 4)
	require.True(t, b.Place(shape.MustParse("bar2v", "1", "1"), 3, 1, 2))

	snap := b.Snapshot()
	require.Len(t, snap, 4)
	assert.Equal(t, Color(3), snap[2][1])
	assert.Equal(t, Color(3), snap[3][1])

	snap[0][0] = 9
	c, _ := b.At(0, 0)
	assert.Equal(t, Empty, c)
}

func TestResetAndString(t *testing.T) {
	b := newBoard(t, 3)
	require.True(t, b.Place(shape.MustParse("ell", "100", "111"), 2, 0, 1))
	assert.Equal(t, "...\n2..\n222", b.String())

	b.Reset()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, "...\n...\n...", b.String())
}
