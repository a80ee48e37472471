// Package selection manages the tray of pieces currently offered to the player.
//
// A [Selection] has a fixed number of slots. Each slot holds a live [Piece]
// or the consumed sentinel (a piece whose color is board.Empty). Placing a
// piece consumes its slot in place; the remaining slots keep their positions.
// The tray is refilled only once every slot has been consumed.
package selection

import (
	"iter"

	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/shape"
)

// DefaultSlots is the conventional tray size.
const DefaultSlots = 3

// Piece is a shape offered in a given color.
type Piece struct {
	ShapeID int
	Color   board.Color
}

// Consumed reports whether the piece is the empty sentinel.
func (p Piece) Consumed() bool { return p.Color == board.Empty }

// Slot is a read-only view of one tray position.
type Slot struct {
	Index  int
	Piece  Piece
	Active bool
}

// Selection is the ordered tray of offered pieces.
type Selection struct {
	catalog *shape.Catalog
	colors  int
	rng     shape.Rand
	pieces  []Piece
}

// Generate returns a tray of the given size where every slot holds a piece
// with a uniformly drawn shape id and a color drawn from [1, colorCount).
func Generate(catalog *shape.Catalog, colorCount, slots int, rng shape.Rand) (*Selection, error) {
	if catalog == nil || catalog.Count() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "selection needs a non-empty catalog")
	}
	if colorCount < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "color count must be at least 2, got %d", colorCount)
	}
	if slots < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "selection needs at least one slot, got %d", slots)
	}
	if rng == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "selection needs a random source")
	}
	s := &Selection{
		catalog: catalog,
		colors:  colorCount,
		rng:     rng,
		pieces:  make([]Piece, slots),
	}
	s.Regenerate()
	return s, nil
}

// Regenerate fills every slot with a fresh random piece.
func (s *Selection) Regenerate() {
	for i := range s.pieces {
		s.pieces[i] = Piece{
			ShapeID: s.catalog.RandomID(s.rng),
			Color:   board.Color(1 + s.rng.IntN(s.colors-1)),
		}
	}
}

// Len returns the number of slots.
func (s *Selection) Len() int { return len(s.pieces) }

// Piece returns the piece in the given slot, which may be consumed.
func (s *Selection) Piece(slot int) (Piece, error) {
	if err := errors.ValidateIndex(errors.ErrCodeInvalidSlotIndex, "slot", slot, len(s.pieces)); err != nil {
		return Piece{}, err
	}
	return s.pieces[slot], nil
}

// Consume marks the slot as used. Other slots are not moved.
func (s *Selection) Consume(slot int) error {
	if err := errors.ValidateIndex(errors.ErrCodeInvalidSlotIndex, "slot", slot, len(s.pieces)); err != nil {
		return err
	}
	s.pieces[slot].Color = board.Empty
	return nil
}

// IsFullyConsumed reports whether every slot has been used.
func (s *Selection) IsFullyConsumed() bool {
	for _, p := range s.pieces {
		if !p.Consumed() {
			return false
		}
	}
	return true
}

// Active yields the slot index and piece of every non-consumed slot, in
// slot order.
func (s *Selection) Active() iter.Seq2[int, Piece] {
	return func(yield func(int, Piece) bool) {
		for i, p := range s.pieces {
			if p.Consumed() {
				continue
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// Slots returns a snapshot of every slot.
func (s *Selection) Slots() []Slot {
	out := make([]Slot, len(s.pieces))
	for i, p := range s.pieces {
		out[i] = Slot{Index: i, Piece: p, Active: !p.Consumed()}
	}
	return out
}
