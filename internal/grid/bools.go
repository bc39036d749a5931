package grid

import (
	"math/bits"
	"strings"
)

// BoolGrid is a Grid[bool] that packs one cell per bit. Cell index i lives
// at bit i%8 of byte i/8.
type BoolGrid struct {
	width  int
	height int
	data   []byte
}

var _ Cells[bool] = (*BoolGrid)(nil)

// NewBoolGrid allocates an all-false width x height grid.
func NewBoolGrid(width, height int) (*BoolGrid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &BoolGrid{
		width:  width,
		height: height,
		data:   make([]byte, (width*height+7)/8),
	}, nil
}

func (g *BoolGrid) Width() int  { return g.width }
func (g *BoolGrid) Height() int { return g.height }

// slot returns the byte offset and bit mask for (x, y).
func (g *BoolGrid) slot(x, y int) (int, byte, error) {
	if err := checkBounds(x, y, g.width, g.height); err != nil {
		return 0, 0, err
	}
	i := y*g.width + x
	return i / 8, 1 << (i % 8), nil
}

// Get reports whether (x, y) is set.
func (g *BoolGrid) Get(x, y int) (bool, error) {
	at, mask, err := g.slot(x, y)
	if err != nil {
		return false, err
	}
	return g.data[at]&mask != 0, nil
}

// Set stores v at (x, y) and returns the previous flag.
func (g *BoolGrid) Set(x, y int, v bool) (bool, error) {
	at, mask, err := g.slot(x, y)
	if err != nil {
		return false, err
	}
	old := g.data[at]&mask != 0
	if v {
		g.data[at] |= mask
	} else {
		g.data[at] &^= mask
	}
	return old, nil
}

// Count returns the number of set cells. Padding bits past the last cell
// are never set.
func (g *BoolGrid) Count() int {
	n := 0
	for _, b := range g.data {
		n += bits.OnesCount8(b)
	}
	return n
}

// String renders 1 for set cells and 0 otherwise, one row per line.
func (g *BoolGrid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if g.data[i/8]&(1<<(i%8)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
