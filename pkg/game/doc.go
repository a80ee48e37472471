// Package game implements the turn state machine of the block puzzle.
//
// # Overview
//
// An [Engine] owns a board, a selection of offered pieces and the score. It
// is passive: a shell polls its state for drawing and forwards one discrete
// request per user action. The engine never performs I/O.
//
//	e, _ := game.New(game.Options{Size: 8, Seed: 42})
//	ok, _ := e.CanPlace(0, 3, 4) // preview while dragging
//	res, _ := e.Place(0, 3, 4)   // commit on release
//	if res.GameOver {
//	    e.Restart()
//	}
//
// # Turns
//
// [Engine.Place] is transactional. When the slot is consumed, the game is
// over, or the piece does not fit, nothing changes and Result.Placed is
// false. Otherwise the piece is written, its slot consumed, full lines are
// detected on the post-placement board and cleared, the score delta is added,
// the selection is regenerated if every slot is now consumed, and finally
// the engine moves to [GameOver] if no active piece fits anywhere.
//
// # Scoring
//
// For r cleared rows and c cleared columns on an N×N board:
//
//	sx, sy := r*N, c*N
//	delta  := sx + sy + sx*sy/2
//
// One row on an 8×8 board scores 8; one row and one column together score 48.
// See [ScoreDelta].
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Callers embedding it in a
// multi-goroutine shell must serialize every call.
package game
