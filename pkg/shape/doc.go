// Package shape provides the immutable polyomino templates offered to the player.
//
// # Overview
//
// A [Shape] is a bounding box of Width×Height cells plus an occupancy mask
// marking which of those cells are filled. Masks are stored as a bit matrix
// in row-major order: cell (x, y), where x is the column and y the row,
// is bit y*Width+x. The origin (0, 0) is the top-left cell of the bounding box.
//
// Shapes are built from row strings with [Parse], the first string being the
// top row:
//
//	corner, _ := shape.Parse("corner", "100", "111")
//
// # Catalog
//
// A [Catalog] is a fixed, read-only list of shapes addressed by integer id.
// [Default] returns the standard twenty templates (squares, rectangles, small
// and large corners, bars and the single dot). Custom catalogs are built with
// [NewCatalog], typically from the [[shapes]] table of a config file.
//
// [Catalog.Get] with an out-of-range id is a caller bug and fails with
// errors.ErrCodeInvalidShapeID. [Catalog.RandomID] draws uniformly over
// [0, Count).
//
// # Concurrency
//
// Shapes and catalogs are never mutated after construction and are safe for
// concurrent readers.
package shape
