// Package grid provides rectangular, bounds-checked containers addressed by
// (x, y) coordinates.
//
// Every container stores its cells in one linear slice using the row-major
// law index = y*width + x. Coordinates outside [0,width) x [0,height) are
// rejected with an *Error of KindOutOfBounds; they are never clamped or
// wrapped, and a rejected call never touches the backing storage.
package grid

import (
	"fmt"
	"strings"
)

// Cells is the capability shared by every grid in this package.
type Cells[V any] interface {
	Width() int
	Height() int
	Get(x, y int) (V, error)
	Set(x, y int, v V) (V, error)
}

// Grid is a rectangular container mapping (x, y) to a value of type V.
type Grid[V any] struct {
	width  int
	height int
	cells  []V
}

var _ Cells[int] = (*Grid[int])(nil)

// New allocates a zero-filled width x height grid.
func New[V any](width, height int) (*Grid[V], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid[V]{
		width:  width,
		height: height,
		cells:  make([]V, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.height }

// Index returns the linear slot for (x, y).
func (g *Grid[V]) Index(x, y int) (int, error) {
	if err := checkBounds(x, y, g.width, g.height); err != nil {
		return 0, err
	}
	return y*g.width + x, nil
}

// Get returns the value stored at (x, y).
func (g *Grid[V]) Get(x, y int) (V, error) {
	i, err := g.Index(x, y)
	if err != nil {
		var zero V
		return zero, err
	}
	return g.cells[i], nil
}

// Set stores v at (x, y) and returns the value it replaced.
func (g *Grid[V]) Set(x, y int, v V) (V, error) {
	i, err := g.Index(x, y)
	if err != nil {
		var zero V
		return zero, err
	}
	old := g.cells[i]
	g.cells[i] = v
	return old, nil
}

// String renders one row per line with fmt.Sprint for each cell.
func (g *Grid[V]) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fmt.Fprint(&b, g.cells[y*g.width+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
