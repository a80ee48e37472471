package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/observability"
	"github.com/matzehuels/blocks/pkg/selection"
	"github.com/matzehuels/blocks/pkg/shape"
)

// State is the engine's position in the turn state machine.
type State int

const (
	// Playing accepts placements.
	Playing State = iota
	// GameOver rejects placements until [Engine.Restart].
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result describes the outcome of one [Engine.Place] call.
type Result struct {
	Placed   bool        // false when the request was rejected with no effect
	Lines    board.Lines // rows and columns cleared by this placement
	Delta    int         // score awarded by this placement
	Refilled bool        // the selection was regenerated
	GameOver bool        // the engine entered GameOver after this placement
}

// Stats are counters for the current game, plus totals over the engine's life.
type Stats struct {
	Turns   int // successful placements this game
	Lines   int // rows plus columns cleared this game
	Refills int // selection regenerations this game
	Games   int // games started, including the current one
	Best    int // best final or current score across games
}

// Engine is the puzzle state machine.
type Engine struct {
	opts   Options
	logger *log.Logger

	board *board.Board
	sel   *selection.Selection
	score int
	state State
	stats Stats
}

// New creates an engine and starts the first game: empty board, fresh
// selection, zero score, [Playing].
func New(opts Options) (*Engine, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b, err := board.New(opts.Size)
	if err != nil {
		return nil, err
	}
	sel, err := selection.Generate(opts.Catalog, opts.Colors, opts.Slots, opts.Rand)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		opts:   opts,
		logger: opts.Logger,
		board:  b,
		sel:    sel,
		state:  Playing,
		stats:  Stats{Games: 1},
	}
	e.logger.Debug("engine ready",
		"size", opts.Size,
		"slots", opts.Slots,
		"colors", opts.Colors,
		"shapes", opts.Catalog.Count(),
		"seed", opts.Seed)
	return e, nil
}

// ScoreDelta returns the score for clearing rows full rows and columns full
// columns at once on a board of edge n.
func ScoreDelta(rows, columns, n int) int {
	sx := rows * n
	sy := columns * n
	return sx + sy + (sx*sy)/2
}

// piece resolves a slot to its piece and shape. The slot must be valid.
func (e *Engine) piece(slot int) (selection.Piece, shape.Shape, error) {
	p, err := e.sel.Piece(slot)
	if err != nil {
		return p, shape.Shape{}, err
	}
	if p.Consumed() {
		return p, shape.Shape{}, nil
	}
	s, err := e.opts.Catalog.Get(p.ShapeID)
	return p, s, err
}

// CanPlace previews a placement without mutating anything. It is false for
// consumed slots and after game over. An out-of-range slot is an error.
func (e *Engine) CanPlace(slot, x, y int) (bool, error) {
	p, s, err := e.piece(slot)
	if err != nil {
		return false, err
	}
	if e.state == GameOver || p.Consumed() {
		return false, nil
	}
	return e.board.CanPlace(s, p.Color, x, y), nil
}

// Place attempts to place the piece in slot with its origin at (x, y).
// Rejected requests return a zero Result and leave the engine unchanged.
// An out-of-range slot is an error and also leaves the engine unchanged.
func (e *Engine) Place(slot, x, y int) (Result, error) {
	p, s, err := e.piece(slot)
	if err != nil {
		return Result{}, err
	}
	if e.state == GameOver || p.Consumed() || !e.board.Place(s, p.Color, x, y) {
		e.logger.Debug("placement rejected", "slot", slot, "x", x, "y", y)
		observability.Game().OnReject(slot, x, y)
		return Result{}, nil
	}
	e.logger.Debug("piece placed", "slot", slot, "shape", s.Name(), "x", x, "y", y)

	hooks := observability.Game()
	hooks.OnPlace(slot, p.ShapeID, x, y)
	res := Result{Placed: true}

	if err := e.sel.Consume(slot); err != nil {
		// Unreachable: the slot was validated by piece.
		return res, err
	}
	e.stats.Turns++

	res.Lines = e.board.DetectFullLines()
	if !res.Lines.Empty() {
		e.board.ClearLines(res.Lines)
		res.Delta = ScoreDelta(len(res.Lines.Rows), len(res.Lines.Columns), e.board.Size())
		e.score += res.Delta
		e.stats.Lines += res.Lines.Count()
		e.stats.Best = max(e.stats.Best, e.score)
		e.logger.Debug("lines cleared",
			"rows", len(res.Lines.Rows),
			"columns", len(res.Lines.Columns),
			"delta", res.Delta,
			"score", e.score)
		hooks.OnLinesCleared(len(res.Lines.Rows), len(res.Lines.Columns), res.Delta)
	}

	if e.sel.IsFullyConsumed() {
		e.sel.Regenerate()
		e.stats.Refills++
		res.Refilled = true
		hooks.OnRefill(e.sel.Len())
	}

	if !e.HasMoves() {
		e.state = GameOver
		res.GameOver = true
		e.logger.Debug("game over", "score", e.score, "turns", e.stats.Turns)
		hooks.OnGameOver(e.score, e.stats.Turns)
	}
	return res, nil
}

// HasMoves reports whether any active piece fits anywhere on the board.
func (e *Engine) HasMoves() bool {
	for _, p := range e.sel.Active() {
		s, err := e.opts.Catalog.Get(p.ShapeID)
		if err != nil {
			continue
		}
		if e.board.CanPlaceAnywhere(s) {
			return true
		}
	}
	return false
}

// Moves returns every origin at which the piece in slot fits. It is empty
// for consumed slots and after game over.
func (e *Engine) Moves(slot int) ([][2]int, error) {
	p, s, err := e.piece(slot)
	if err != nil {
		return nil, err
	}
	if e.state == GameOver || p.Consumed() {
		return nil, nil
	}
	return e.board.Fits(s), nil
}

// Restart discards the current game and starts a new one unconditionally.
func (e *Engine) Restart() {
	e.board.Reset()
	e.sel.Regenerate()
	e.score = 0
	e.state = Playing
	best := e.stats.Best
	e.stats = Stats{Games: e.stats.Games + 1, Best: best}
	e.logger.Debug("new game", "game", e.stats.Games)
	observability.Game().OnRestart()
}

// Score returns the current game's score.
func (e *Engine) Score() int { return e.score }

// State returns the current state.
func (e *Engine) State() State { return e.state }

// IsGameOver reports whether the engine is in [GameOver].
func (e *Engine) IsGameOver() bool { return e.state == GameOver }

// Size returns the board edge length.
func (e *Engine) Size() int { return e.board.Size() }

// Slots returns the number of selection slots.
func (e *Engine) Slots() int { return e.sel.Len() }

// Colors returns the palette size including the empty color.
func (e *Engine) Colors() int { return e.opts.Colors }

// Seed returns the seed the engine's generator was created with, or zero when
// a custom random source was supplied.
func (e *Engine) Seed() uint64 { return e.opts.Seed }

// Catalog returns the shape catalog pieces are drawn from.
func (e *Engine) Catalog() *shape.Catalog { return e.opts.Catalog }

// Stats returns the engine's counters.
func (e *Engine) Stats() Stats { return e.stats }

// BoardSnapshot returns a copy of the grid indexed [y][x].
func (e *Engine) BoardSnapshot() [][]board.Color { return e.board.Snapshot() }

// Board returns an independent copy of the board, for evaluation by callers
// such as automatic players.
func (e *Engine) Board() *board.Board { return e.board.Clone() }

// SelectionSnapshot returns a view of every selection slot.
func (e *Engine) SelectionSnapshot() []selection.Slot { return e.sel.Slots() }

// SlotShape returns the shape of the piece in slot. ok is false when the
// slot is consumed.
func (e *Engine) SlotShape(slot int) (s shape.Shape, ok bool, err error) {
	p, s, err := e.piece(slot)
	if err != nil {
		return shape.Shape{}, false, err
	}
	return s, !p.Consumed(), nil
}
