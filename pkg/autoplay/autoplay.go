// Package autoplay drives a game engine without a human player.
//
// It is used by the headless "auto" and "snapshot" commands and by tests
// that need realistic, reproducible games. Strategies only use the engine's
// public API: they inspect a copy of the board and submit moves through
// game.Engine.Place like any other shell would.
package autoplay

import (
	"context"
	"time"

	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Move is one placement request.
type Move struct {
	Slot int
	X, Y int
}

// Strategy picks the next move. ok is false when no legal move exists.
type Strategy interface {
	Choose(e *game.Engine) (m Move, ok bool)
}

// Report summarizes one automatic game.
type Report struct {
	Score    int
	Turns    int
	Lines    int
	Refills  int
	GameOver bool
	Duration time.Duration
}

// Run plays the [Greedy] strategy on e. See [Play].
func Run(ctx context.Context, e *game.Engine, maxTurns int) (Report, error) {
	return Play(ctx, e, Greedy{}, maxTurns)
}

// Play makes moves chosen by s until the game ends, maxTurns placements have
// been made (maxTurns <= 0 means no limit), or ctx is done. The context is
// checked between turns; on cancellation the partial report is returned
// together with ctx.Err().
func Play(ctx context.Context, e *game.Engine, s Strategy, maxTurns int) (Report, error) {
	start := time.Now()
	report := func() Report {
		st := e.Stats()
		return Report{
			Score:    e.Score(),
			Turns:    st.Turns,
			Lines:    st.Lines,
			Refills:  st.Refills,
			GameOver: e.IsGameOver(),
			Duration: time.Since(start),
		}
	}

	for turns := 0; maxTurns <= 0 || turns < maxTurns; turns++ {
		if err := ctx.Err(); err != nil {
			return report(), err
		}
		if e.IsGameOver() {
			break
		}
		m, ok := s.Choose(e)
		if !ok {
			break
		}
		res, err := e.Place(m.Slot, m.X, m.Y)
		if err != nil {
			return report(), err
		}
		if !res.Placed {
			// A strategy proposing an illegal move would loop forever.
			break
		}
	}
	return report(), nil
}

// legalMoves calls fn for every legal (slot, origin) of the active pieces.
func legalMoves(e *game.Engine, fn func(m Move, s shape.Shape, c board.Color)) {
	for _, slot := range e.SelectionSnapshot() {
		if !slot.Active {
			continue
		}
		s, ok, err := e.SlotShape(slot.Index)
		if err != nil || !ok {
			continue
		}
		moves, err := e.Moves(slot.Index)
		if err != nil {
			continue
		}
		for _, xy := range moves {
			fn(Move{Slot: slot.Index, X: xy[0], Y: xy[1]}, s, slot.Piece.Color)
		}
	}
}
