// Package rps solves day 2, Rock Paper Scissors.
package rps

import (
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

// Shape is a hand. The values are chosen so outcomes are arithmetic mod 3.
type Shape uint8

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Outcome of a round from our side.
type Outcome uint8

const (
	Lose Outcome = iota
	Draw
	Win
)

// Play returns the outcome of you against opp.
func Play(opp, you Shape) Outcome {
	return Outcome((2*uint8(opp) + uint8(you) + 1) % 3)
}

// Choose returns the shape that produces out against opp.
func Choose(opp Shape, out Outcome) Shape {
	return Shape((uint8(out) + 8 - 2*uint8(opp)) % 3)
}

// Score is the points for one round: shape value plus 0, 3 or 6.
func Score(you Shape, out Outcome) int {
	return int(you) + 1 + 3*int(out)
}

// Solver answers day 2.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 2 }
func (Solver) Title() string { return "Rock Paper Scissors" }

func (Solver) PartOne(input string) (string, error) {
	return total(input, func(opp Shape, col byte) int {
		you := Shape(col - 'X')
		return Score(you, Play(opp, you))
	})
}

func (Solver) PartTwo(input string) (string, error) {
	return total(input, func(opp Shape, col byte) int {
		out := Outcome(col - 'X')
		return Score(Choose(opp, out), out)
	})
}

func total(input string, round func(opp Shape, col byte) int) (string, error) {
	sum := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, " ")
		if len(fields) != 2 {
			return "", puzzle.Tokenf(line, "expected two entries, got %d", len(fields))
		}
		if len(fields[0]) != 1 || fields[0][0] < 'A' || fields[0][0] > 'C' {
			return "", puzzle.Tokenf(fields[0], "expected A, B or C in %q", line)
		}
		if len(fields[1]) != 1 || fields[1][0] < 'X' || fields[1][0] > 'Z' {
			return "", puzzle.Tokenf(fields[1], "expected X, Y or Z in %q", line)
		}
		sum += round(Shape(fields[0][0]-'A'), fields[1][0])
	}
	return strconv.Itoa(sum), nil
}
