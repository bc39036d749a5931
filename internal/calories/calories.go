// Package calories solves day 1, Calorie Counting.
package calories

import (
	"slices"
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

// Solver answers day 1.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 1 }
func (Solver) Title() string { return "Calorie Counting" }

// Totals returns the calorie sum carried by each elf. Elves are separated
// by blank lines.
func Totals(input string) ([]int, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	var totals []int
	for _, block := range strings.Split(input, "\n\n") {
		sum, items := 0, 0
		for _, line := range strings.Split(block, "\n") {
			if line == "" {
				continue
			}
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, puzzle.Tokenf(line, "%v", err)
			}
			sum += n
			items++
		}
		if items > 0 {
			totals = append(totals, sum)
		}
	}
	return totals, nil
}

// Top returns the sum of the n largest totals.
func Top(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	sum := 0
	for _, t := range sorted[:min(n, len(sorted))] {
		sum += t
	}
	return sum
}

func (Solver) PartOne(input string) (string, error) {
	totals, err := Totals(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Top(totals, 1)), nil
}

func (Solver) PartTwo(input string) (string, error) {
	totals, err := Totals(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Top(totals, 3)), nil
}
