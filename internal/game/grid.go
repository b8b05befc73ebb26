package game

import (
	"golang.org/x/exp/rand"
)

// Grid is the playable area. It only knows its own size: cells hold no
// state, and positions outside the grid stay representable because some
// entities are allowed to wander off it.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid, i.e. within
// [0,Width) x [0,Height).
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// RandomCell returns a uniformly random in-bounds cell.
func (g Grid) RandomCell(rng *rand.Rand) Position {
	return Position{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}
