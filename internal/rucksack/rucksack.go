// Package rucksack solves day 3, Rucksack Reorganization.
package rucksack

import (
	"math/bits"
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

// Items is a set of item types, one bit per priority.
type Items uint64

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	default:
		return 0, puzzle.Tokenf(string(c), "expected a letter between A and z")
	}
}

// Pack returns the set of items in s.
func Pack(s string) (Items, error) {
	var set Items
	for i := 0; i < len(s); i++ {
		p, err := Priority(s[i])
		if err != nil {
			return 0, err
		}
		set |= 1 << p
	}
	return set, nil
}

// Lowest returns the priority of the lowest item in set, or 0 when empty.
func (set Items) Lowest() int {
	if set == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(set))
}

// Solver answers day 3.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 3 }
func (Solver) Title() string { return "Rucksack Reorganization" }

// PartOne sums the item found in both compartments of every rucksack.
func (Solver) PartOne(input string) (string, error) {
	sum := 0
	for _, line := range lines(input) {
		half := len(line) / 2
		left, err := Pack(line[:half])
		if err != nil {
			return "", err
		}
		right, err := Pack(line[half:])
		if err != nil {
			return "", err
		}
		common := left & right
		if common == 0 {
			return "", puzzle.Tokenf(line, "expected at least one duplicate across halves")
		}
		sum += common.Lowest()
	}
	return strconv.Itoa(sum), nil
}

// PartTwo sums the badge shared by each group of three rucksacks.
func (Solver) PartTwo(input string) (string, error) {
	rs := lines(input)
	if len(rs)%3 != 0 {
		return "", puzzle.Tokenf(strings.Join(rs[len(rs)-len(rs)%3:], "\n"), "expected groups of three rucksacks")
	}
	sum := 0
	for i := 0; i < len(rs); i += 3 {
		common := ^Items(0)
		for _, r := range rs[i : i+3] {
			set, err := Pack(r)
			if err != nil {
				return "", err
			}
			common &= set
		}
		if common == 0 {
			return "", puzzle.Tokenf(strings.Join(rs[i:i+3], "\n"), "expected at least one commonality across group")
		}
		sum += common.Lowest()
	}
	return strconv.Itoa(sum), nil
}

func lines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
