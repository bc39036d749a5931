package forest

import (
	"fmt"

	"advent/internal/grid"

	"golang.org/x/exp/constraints"
)

// ScanLine marks the positions of a line of the given length that are
// visible from at least one of its ends, and returns the tallest height on
// the line.
//
// Both ends are always visible. Walking inward from each end, a position is
// visible from that end iff it is strictly taller than everything before it.
// Both walks cover the whole line; a tall tree near the far end is still
// reachable from the near one.
func ScanLine[H constraints.Integer](length int, at Line[H]) (*grid.Bits, H, error) {
	visible := grid.NewBits(length)
	var peak H
	if length == 0 {
		return visible, peak, nil
	}

	fromStart, err := at(0)
	if err != nil {
		return nil, peak, err
	}
	fromEnd, err := at(length - 1)
	if err != nil {
		return nil, peak, err
	}
	visible.Set(0)
	visible.Set(length - 1)

	for i := 1; i < length-1; i++ {
		h, err := at(i)
		if err != nil {
			return nil, peak, err
		}
		if h > fromStart {
			fromStart = h
			visible.Set(i)
		}

		j := length - 1 - i
		h, err = at(j)
		if err != nil {
			return nil, peak, err
		}
		if h > fromEnd {
			fromEnd = h
			visible.Set(j)
		}
	}

	peak = max(fromStart, fromEnd)
	return visible, peak, nil
}

// Visible returns the cells of src that can be seen from outside the grid
// along their row or their column.
func Visible[H constraints.Integer](src Source[H]) (*grid.BoolGrid, error) {
	out, err := grid.NewBoolGrid(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	for y := 0; y < src.Height(); y++ {
		line, _, err := ScanLine(src.Width(), Row(src, y))
		if err != nil {
			return nil, fmt.Errorf("scan row %d: %w", y, err)
		}
		for x, ok := range line.All() {
			if !ok {
				continue
			}
			if _, err := out.Set(x, y, true); err != nil {
				return nil, err
			}
		}
	}

	for x := 0; x < src.Width(); x++ {
		line, _, err := ScanLine(src.Height(), Column(src, x))
		if err != nil {
			return nil, fmt.Errorf("scan column %d: %w", x, err)
		}
		for y, ok := range line.All() {
			if !ok {
				continue
			}
			if _, err := out.Set(x, y, true); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// CountVisible returns the number of cells Visible reports.
func CountVisible[H constraints.Integer](src Source[H]) (int, error) {
	v, err := Visible(src)
	if err != nil {
		return 0, err
	}
	return v.Count(), nil
}
