// Package pkg provides the libraries behind the blocks puzzle.
//
// # Overview
//
// Blocks is a block-placement puzzle in the style of "1010!": pieces drawn
// from a fixed set of shapes are dropped on a square board, full rows and
// columns clear and score, and the game ends when no offered piece fits.
// The pkg directory is organized leaf to root:
//
//  1. [shape] - Immutable shape templates and the shape catalog
//  2. [board] - The grid, placement legality and line clearing
//  3. [selection] - The offered pieces and their refill policy
//  4. [game] - The turn engine: scoring, refills and game over
//
// Around the engine sit [autoplay] (computer players), [export] (JSON and
// Graphviz snapshots), [config] (TOML settings), [observability] (event
// hooks) and [errors] (coded errors).
//
// # Architecture
//
// A shell drives the engine with board-relative requests:
//
//	key press / autoplayer
//	         ↓
//	    Engine.Place(slot, x, y)
//	         ↓
//	    Board.Place → DetectFullLines → ClearLines → score
//	         ↓
//	    Selection refill → game-over scan
//	         ↓
//	    Engine snapshots → TUI / export
//
// The engine never performs I/O. It is single-threaded; callers serialize
// access.
//
// # Quick Start
//
//	e, _ := game.New(game.Options{Seed: 42})
//	moves, _ := e.Moves(0)
//	res, _ := e.Place(0, moves[0][0], moves[0][1])
//	fmt.Println(res.Delta, e.Score(), e.IsGameOver())
//
// [shape]: github.com/matzehuels/blocks/pkg/shape
// [board]: github.com/matzehuels/blocks/pkg/board
// [selection]: github.com/matzehuels/blocks/pkg/selection
// [game]: github.com/matzehuels/blocks/pkg/game
// [autoplay]: github.com/matzehuels/blocks/pkg/autoplay
// [export]: github.com/matzehuels/blocks/pkg/export
// [config]: github.com/matzehuels/blocks/pkg/config
// [observability]: github.com/matzehuels/blocks/pkg/observability
// [errors]: github.com/matzehuels/blocks/pkg/errors
package pkg
