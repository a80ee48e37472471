package shape

import (
	"github.com/matzehuels/blocks/pkg/errors"
)

// Rand is the subset of *math/rand/v2.Rand used for drawing shapes.
type Rand interface {
	IntN(n int) int
}

// Catalog is an immutable, indexed set of shapes.
type Catalog struct {
	shapes []Shape
}

// NewCatalog builds a catalog from the given shapes. Ids are assigned in
// argument order. An empty catalog is rejected.
func NewCatalog(shapes ...Shape) (*Catalog, error) {
	if len(shapes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "catalog must contain at least one shape")
	}
	for i, s := range shapes {
		if s.bits == 0 {
			return nil, errors.New(errors.ErrCodeInvalidShape, "catalog entry %d is not a valid shape", i)
		}
	}
	return &Catalog{shapes: append([]Shape(nil), shapes...)}, nil
}

// Get returns the shape with the given id.
func (c *Catalog) Get(id int) (Shape, error) {
	if err := errors.ValidateIndex(errors.ErrCodeInvalidShapeID, "shape id", id, len(c.shapes)); err != nil {
		return Shape{}, err
	}
	return c.shapes[id], nil
}

// Count returns the number of shapes.
func (c *Catalog) Count() int { return len(c.shapes) }

// RandomID returns an id drawn uniformly from [0, Count).
func (c *Catalog) RandomID(r Rand) int {
	return r.IntN(len(c.shapes))
}

// All returns a copy of the catalog's shapes in id order.
func (c *Catalog) All() []Shape {
	return append([]Shape(nil), c.shapes...)
}

// MaxExtent returns the largest width or height of any shape in the catalog.
func (c *Catalog) MaxExtent() int {
	m := 0
	for _, s := range c.shapes {
		m = max(m, s.width, s.height)
	}
	return m
}

var defaultShapes = []Shape{
	MustParse("square2", "11", "11"),
	MustParse("rect3x2", "111", "111"),
	MustParse("rect2x3", "11", "11", "11"),
	MustParse("square3", "111", "111", "111"),
	MustParse("ell", "100", "111"),
	MustParse("corner-ne", "11", "01"),
	MustParse("corner-nw", "11", "10"),
	MustParse("corner-se", "01", "11"),
	MustParse("corner-sw", "10", "11"),
	MustParse("bigcorner-nw", "111", "100", "100"),
	MustParse("bigcorner-ne", "111", "001", "001"),
	MustParse("bigcorner-se", "001", "001", "111"),
	MustParse("bigcorner-sw", "100", "100", "111"),
	MustParse("bar2h", "11"),
	MustParse("bar2v", "1", "1"),
	MustParse("bar3h", "111"),
	MustParse("bar3v", "1", "1", "1"),
	MustParse("bar4h", "1111"),
	MustParse("bar4v", "1", "1", "1", "1"),
	MustParse("dot", "1"),
}

var defaultCatalog = &Catalog{shapes: defaultShapes}

// Default returns the standard twenty-shape catalog.
func Default() *Catalog {
	return defaultCatalog
}
