// Package cleanup solves day 4, Camp Cleanup.
package cleanup

import (
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

// Span is an inclusive range of section IDs.
type Span struct {
	Start, End int
}

// Contains reports whether s covers o entirely.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && s.End >= o.End
}

// Overlaps reports whether s and o share at least one section.
func (s Span) Overlaps(o Span) bool {
	return s.Start <= o.End && o.Start <= s.End
}

// ParsePair reads "a-b,c-d".
func ParsePair(line string) (Span, Span, error) {
	left, right, ok := strings.Cut(line, ",")
	if !ok || strings.Contains(right, ",") {
		return Span{}, Span{}, puzzle.Tokenf(line, "there should be two elves per line")
	}
	a, err := parseSpan(left, line)
	if err != nil {
		return Span{}, Span{}, err
	}
	b, err := parseSpan(right, line)
	if err != nil {
		return Span{}, Span{}, err
	}
	return a, b, nil
}

func parseSpan(s, line string) (Span, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Span{}, puzzle.Tokenf(s, "there should be a start and an end for each elf in %s", line)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return Span{}, puzzle.Tokenf(line, "%v", err)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return Span{}, puzzle.Tokenf(line, "%v", err)
	}
	if start > end {
		return Span{}, puzzle.Tokenf(line, "start (%d) is after end (%d)", start, end)
	}
	return Span{Start: start, End: end}, nil
}

// Solver answers day 4.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 4 }
func (Solver) Title() string { return "Camp Cleanup" }

func (Solver) PartOne(input string) (string, error) {
	return count(input, func(a, b Span) bool { return a.Contains(b) || b.Contains(a) })
}

func (Solver) PartTwo(input string) (string, error) {
	return count(input, Span.Overlaps)
}

func count(input string, match func(a, b Span) bool) (string, error) {
	n := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		a, b, err := ParsePair(line)
		if err != nil {
			return "", err
		}
		if match(a, b) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}
