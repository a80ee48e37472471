package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Snapshot is the serializable state of a game.
type Snapshot struct {
	GameID    string    `json:"game_id,omitempty"`
	Seed      uint64    `json:"seed"`
	Size      int       `json:"size"`
	Score     int       `json:"score"`
	State     string    `json:"state"`
	Turns     int       `json:"turns"`
	Lines     int       `json:"lines"`
	Board     [][]int   `json:"board"`
	Selection []Slot    `json:"selection"`
	TakenAt   time.Time `json:"taken_at"`
}

// Slot is one selection slot in a [Snapshot].
type Slot struct {
	Slot   int      `json:"slot"`
	Shape  string   `json:"shape,omitempty"`
	Rows   []string `json:"rows,omitempty"`
	Color  int      `json:"color,omitempty"`
	Active bool     `json:"active"`
}

// FromEngine captures the current state of e. id identifies the session
// and may be empty.
func FromEngine(id string, e *game.Engine) Snapshot {
	st := e.Stats()
	s := Snapshot{
		GameID:  id,
		Seed:    e.Seed(),
		Size:    e.Size(),
		Score:   e.Score(),
		State:   e.State().String(),
		Turns:   st.Turns,
		Lines:   st.Lines,
		TakenAt: time.Now().UTC(),
	}

	grid := e.BoardSnapshot()
	s.Board = make([][]int, len(grid))
	for y, row := range grid {
		s.Board[y] = make([]int, len(row))
		for x, c := range row {
			s.Board[y][x] = int(c)
		}
	}

	for _, sl := range e.SelectionSnapshot() {
		out := Slot{Slot: sl.Index, Active: sl.Active}
		if sl.Active {
			if sh, ok, err := e.SlotShape(sl.Index); err == nil && ok {
				out.Shape = sh.Name()
				out.Rows = sh.Rows()
				out.Color = int(sl.Piece.Color)
			}
		}
		s.Selection = append(s.Selection, out)
	}
	return s
}

// Validate checks that the board is square, matches Size and holds only
// representable colors, and that every active slot holds a well-formed shape.
func (s Snapshot) Validate() error {
	if s.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "snapshot size must be positive, got %d", s.Size)
	}
	if len(s.Board) != s.Size {
		return errors.New(errors.ErrCodeInvalidInput, "snapshot board has %d rows, want %d", len(s.Board), s.Size)
	}
	for y, row := range s.Board {
		if len(row) != s.Size {
			return errors.New(errors.ErrCodeInvalidInput, "snapshot row %d has %d cells, want %d", y, len(row), s.Size)
		}
		for x, c := range row {
			if c < 0 || c > 255 {
				return errors.New(errors.ErrCodeInvalidInput, "snapshot cell (%d,%d) has color %d", x, y, c)
			}
		}
	}
	for _, sl := range s.Selection {
		if !sl.Active {
			continue
		}
		if _, err := shape.Parse(sl.Shape, sl.Rows...); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "snapshot slot %d", sl.Slot)
		}
	}
	return nil
}

// Color returns the board cell at (x, y) as a board color.
func (s Snapshot) Color(x, y int) board.Color {
	return board.Color(s.Board[y][x])
}

// WriteJSON encodes s as indented JSON and writes it to w.
func WriteJSON(s Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes s to a JSON file at path.
func ExportJSON(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

// ReadJSON decodes a snapshot written by [WriteJSON] and validates it.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode snapshot")
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// ImportJSON reads a snapshot from the JSON file at path.
func ImportJSON(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
