package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/selection"
	"github.com/matzehuels/blocks/pkg/shape"
)

// Defaults used when an Options field is left zero.
const (
	DefaultSize   = 8
	DefaultColors = 8
	DefaultSlots  = selection.DefaultSlots
)

// Limits accepted by [Options.Validate].
const (
	MinSize   = 4
	MaxSize   = 16
	MinColors = 2
	MaxColors = 10
	MinSlots  = 1
	MaxSlots  = 5
)

// Options configures a new [Engine].
type Options struct {
	// Size is the board edge length N.
	Size int
	// Slots is the number of pieces offered at once.
	Slots int
	// Colors is the palette size including the empty color, so pieces are
	// drawn from colors 1..Colors-1.
	Colors int
	// Catalog is the shape set pieces are drawn from. Defaults to shape.Default().
	Catalog *shape.Catalog
	// Seed seeds the engine's PCG generator. Zero picks a random seed.
	// Cleared when Rand is set.
	Seed uint64
	// Rand overrides the random source.
	Rand shape.Rand
	// Logger receives debug output. Defaults to a logger that discards everything.
	Logger *log.Logger
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Slots == 0 {
		o.Slots = DefaultSlots
	}
	if o.Colors == 0 {
		o.Colors = DefaultColors
	}
	if o.Catalog == nil {
		o.Catalog = shape.Default()
	}
	if o.Rand == nil {
		if o.Seed == 0 {
			o.Seed = rand.Uint64()
		}
		o.Rand = rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
	} else {
		o.Seed = 0
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Validate checks ranges and that every shape fits on an empty board.
func (o Options) Validate() error {
	if err := errors.ValidateRange("size", o.Size, MinSize, MaxSize); err != nil {
		return err
	}
	if err := errors.ValidateRange("slots", o.Slots, MinSlots, MaxSlots); err != nil {
		return err
	}
	if err := errors.ValidateRange("colors", o.Colors, MinColors, MaxColors); err != nil {
		return err
	}
	if o.Catalog != nil && o.Catalog.MaxExtent() > o.Size {
		return errors.New(errors.ErrCodeInvalidConfig, "catalog has a shape %d cells wide, larger than the %dx%d board", o.Catalog.MaxExtent(), o.Size, o.Size)
	}
	return nil
}
