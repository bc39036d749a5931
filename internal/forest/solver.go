package forest

import (
	"strconv"

	"advent/internal/grid"
	"advent/internal/puzzle"
)

// Solver answers day 8, Treetop Tree House.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 8 }
func (Solver) Title() string { return "Treetop Tree House" }

// PartOne counts the trees visible from outside the grid.
func (Solver) PartOne(input string) (string, error) {
	heights, err := grid.ParseDigits(input)
	if err != nil {
		return "", err
	}
	n, err := CountVisible[uint8](heights)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// PartTwo finds the highest scenic score.
func (Solver) PartTwo(input string) (string, error) {
	heights, err := grid.ParseDigits(input)
	if err != nil {
		return "", err
	}
	best, err := BestScenicScore[uint8](heights)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(best.Score), nil
}
