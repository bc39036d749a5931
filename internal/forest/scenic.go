package forest

import (
	"advent/internal/grid"

	"golang.org/x/exp/constraints"
)

// Distances holds how many trees can be seen from a cell in each direction.
type Distances struct {
	Left, Right, Up, Down int
}

// Score is the product of the four distances.
func (d Distances) Score() int {
	return d.Left * d.Right * d.Up * d.Down
}

// Spot is a cell together with its scenic score.
type Spot struct {
	X, Y  int
	Score int
}

// ViewingDistance walks outward from (x, y) in the four axis directions.
// Each walk starts next to the origin and stops at, and counts, the first
// tree that is not strictly shorter than the origin; otherwise it runs to
// the edge.
func ViewingDistance[H constraints.Integer](src Source[H], x, y int) (Distances, error) {
	var d Distances
	origin, err := src.Get(x, y)
	if err != nil {
		return d, err
	}

	walk := func(steps int, at func(n int) (H, error)) (int, error) {
		seen := 0
		for n := 1; n <= steps; n++ {
			h, err := at(n)
			if err != nil {
				return 0, err
			}
			seen++
			if h >= origin {
				break
			}
		}
		return seen, nil
	}

	if d.Left, err = walk(x, func(n int) (H, error) { return src.Get(x-n, y) }); err != nil {
		return d, err
	}
	if d.Right, err = walk(src.Width()-1-x, func(n int) (H, error) { return src.Get(x+n, y) }); err != nil {
		return d, err
	}
	if d.Up, err = walk(y, func(n int) (H, error) { return src.Get(x, y-n) }); err != nil {
		return d, err
	}
	if d.Down, err = walk(src.Height()-1-y, func(n int) (H, error) { return src.Get(x, y+n) }); err != nil {
		return d, err
	}
	return d, nil
}

// ScenicScores computes the score of every cell of src.
func ScenicScores[H constraints.Integer](src Source[H]) (*grid.Grid[int], error) {
	scores, err := grid.New[int](src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			d, err := ViewingDistance(src, x, y)
			if err != nil {
				return nil, err
			}
			if _, err := scores.Set(x, y, d.Score()); err != nil {
				return nil, err
			}
		}
	}
	return scores, nil
}

// BestScenicScore returns the highest scoring cell. Ties go to the first
// cell in row-major order.
func BestScenicScore[H constraints.Integer](src Source[H]) (Spot, error) {
	scores, err := ScenicScores(src)
	if err != nil {
		return Spot{}, err
	}
	best := Spot{Score: -1}
	for y := 0; y < scores.Height(); y++ {
		for x := 0; x < scores.Width(); x++ {
			s, err := scores.Get(x, y)
			if err != nil {
				return Spot{}, err
			}
			if s > best.Score {
				best = Spot{X: x, Y: y, Score: s}
			}
		}
	}
	return best, nil
}
