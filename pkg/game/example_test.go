package game_test

import (
	"fmt"

	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

func ExampleScoreDelta() {
	fmt.Println("one row:", game.ScoreDelta(1, 0, 8))
	fmt.Println("row and column:", game.ScoreDelta(1, 1, 8))
	fmt.Println("two rows, two columns:", game.ScoreDelta(2, 2, 8))
	// Output:
	// one row: 8
	// row and column: 48
	// two rows, two columns: 160
}

func ExampleEngine_Place() {
	square, _ := shape.NewCatalog(shape.MustParse("square2", "11", "11"))
	e, _ := game.New(game.Options{Size: 8, Catalog: square, Seed: 7})

	res, _ := e.Place(0, 0, 0)
	fmt.Println("placed:", res.Placed, "score:", e.Score())

	ok, _ := e.CanPlace(1, 1, 1)
	fmt.Println("overlap allowed:", ok)

	res, _ = e.Place(0, 4, 4)
	fmt.Println("reused slot placed:", res.Placed)
	// Output:
	// placed: true score: 0
	// overlap allowed: false
	// reused slot placed: false
}
