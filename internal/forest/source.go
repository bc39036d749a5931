// Package forest solves the tree-house puzzle: which trees in a height map
// can be seen from outside the grid, and which tree has the best view.
//
// The algorithms read heights through Source and Line, never a concrete grid.
package forest

import (
	"golang.org/x/exp/constraints"
)

// Source is a read-only, bounds-checked height map.
type Source[H constraints.Integer] interface {
	Width() int
	Height() int
	Get(x, y int) (H, error)
}

// Line reads the i-th height along one row or column.
type Line[H constraints.Integer] func(i int) (H, error)

// Row returns the accessor for row y of src.
func Row[H constraints.Integer](src Source[H], y int) Line[H] {
	return func(i int) (H, error) { return src.Get(i, y) }
}

// Column returns the accessor for column x of src.
func Column[H constraints.Integer](src Source[H], x int) Line[H] {
	return func(i int) (H, error) { return src.Get(x, i) }
}
