// Package signal solves day 6, Tuning Trouble.
package signal

import (
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

const (
	// PacketWindow is the start-of-packet marker length.
	PacketWindow = 4
	// MessageWindow is the start-of-message marker length.
	MessageWindow = 14
)

// Marker returns the number of characters read once the last size
// characters are all different.
func Marker(stream string, size int) (int, error) {
	stream = strings.TrimSpace(stream)
	if len(stream) < size {
		return 0, puzzle.Tokenf(stream, "expected at least %d characters", size)
	}
	var seen [256]int
	dupes := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if seen[c]++; seen[c] == 2 {
			dupes++
		}
		if i >= size {
			old := stream[i-size]
			if seen[old]--; seen[old] == 1 {
				dupes--
			}
		}
		if i >= size-1 && dupes == 0 {
			return i + 1, nil
		}
	}
	return 0, puzzle.Tokenf(stream, "no block of %d without repeats", size)
}

// Solver answers day 6.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 6 }
func (Solver) Title() string { return "Tuning Trouble" }

func (Solver) PartOne(input string) (string, error) { return find(input, PacketWindow) }
func (Solver) PartTwo(input string) (string, error) { return find(input, MessageWindow) }

func find(input string, size int) (string, error) {
	n, err := Marker(input, size)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
