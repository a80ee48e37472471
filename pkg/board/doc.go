// Package board implements the square grid pieces are placed on.
//
// A [Board] is an N×N grid of [Color] values where [Empty] (0) marks a free
// cell. Coordinates are (x, y) with x the column and y the row, both in
// [0, N); (0, 0) is the top-left cell. Cells are stored in a flat slice but
// raw indices never leave this package.
//
// # Placement
//
// [Board.CanPlace] checks a shape anchored with its top-left bounding-box cell
// at (x, y): every filled cell of the shape must land inside the board on an
// empty cell. Unfilled bounding-box cells are ignored, so a corner piece may
// hang its empty corner off the edge. Out of bounds and collision are the same
// outcome: false.
//
// [Board.Place] is all-or-nothing. When CanPlace is false the board is left
// exactly as it was.
//
// # Lines
//
// [Board.DetectFullLines] reports every row and column whose cells are all
// non-empty; [Board.ClearLines] empties them. A cell shared by a full row and
// a full column is cleared once.
package board
