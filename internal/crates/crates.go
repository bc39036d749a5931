// Package crates solves day 5, Supply Stacks.
package crates

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

// StackError reports a move that the ship cannot perform.
type StackError struct {
	Stack  int // 1-based
	Stacks int
	Want   int
	Have   int
}

func (e *StackError) Error() string {
	switch {
	case e.Stack < 1 || e.Stack > e.Stacks:
		return fmt.Sprintf("stack %d out of range (max: %d)", e.Stack, e.Stacks)
	case e.Want > e.Have:
		return fmt.Sprintf("can't move %d crates from stack %d; it holds %d", e.Want, e.Stack, e.Have)
	default:
		return fmt.Sprintf("stack %d is empty", e.Stack)
	}
}

// Move is one rearrangement step.
type Move struct {
	Count, From, To int
}

// Ship holds the stacks bottom to top.
type Ship struct {
	Stacks [][]byte
}

// Apply performs m. One-at-a-time cranes reverse the moved block;
// multi-crate cranes keep its order.
func (s *Ship) Apply(m Move, keepOrder bool) error {
	for _, n := range []int{m.From, m.To} {
		if n < 1 || n > len(s.Stacks) {
			return &StackError{Stack: n, Stacks: len(s.Stacks)}
		}
	}
	if m.Count < 0 {
		return fmt.Errorf("can't move %d crates", m.Count)
	}
	from := s.Stacks[m.From-1]
	if m.Count > len(from) {
		return &StackError{Stack: m.From, Stacks: len(s.Stacks), Want: m.Count, Have: len(from)}
	}
	cut := len(from) - m.Count
	block := append([]byte(nil), from[cut:]...)
	if !keepOrder {
		for i, j := 0, len(block)-1; i < j; i, j = i+1, j-1 {
			block[i], block[j] = block[j], block[i]
		}
	}
	s.Stacks[m.From-1] = from[:cut]
	s.Stacks[m.To-1] = append(s.Stacks[m.To-1], block...)
	return nil
}

// Tops returns the crate on top of each stack.
func (s *Ship) Tops() (string, error) {
	var b strings.Builder
	for i, st := range s.Stacks {
		if len(st) == 0 {
			return "", &StackError{Stack: i + 1, Stacks: len(s.Stacks)}
		}
		b.WriteByte(st[len(st)-1])
	}
	return b.String(), nil
}

// Parse splits the input into the starting drawing and the moves.
func Parse(input string) (*Ship, []Move, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	drawing, procedure, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, nil, puzzle.Tokenf("", "expected a drawing and a procedure separated by a blank line")
	}
	ship, err := parseDrawing(strings.Split(drawing, "\n"))
	if err != nil {
		return nil, nil, err
	}
	var moves []Move
	for _, line := range strings.Split(procedure, "\n") {
		if line == "" {
			continue
		}
		m, err := parseMove(line)
		if err != nil {
			return nil, nil, err
		}
		moves = append(moves, m)
	}
	return ship, moves, nil
}

// parseDrawing reads the stack picture bottom up. The last line numbers
// the stacks 1..n, each label sitting in column 4*i+1.
func parseDrawing(lines []string) (*Ship, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[len(lines)-1]) == "" {
		return nil, puzzle.Tokenf("", "expected stack layout, but the drawing is empty")
	}
	labels := strings.Fields(lines[len(lines)-1])
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, puzzle.Tokenf(l, "expecting stack label %d", i+1)
		}
	}
	ship := &Ship{Stacks: make([][]byte, len(labels))}
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for col := 0; col < len(line); col++ {
			stack := col / 4
			if stack >= len(labels) {
				if line[col] != ' ' {
					return nil, puzzle.Tokenf(line, "crate at column %d is outside the ship with %d stacks", col, len(labels))
				}
				continue
			}
			c := line[col]
			switch col % 4 {
			case 0:
				if c != '[' && c != ' ' {
					return nil, puzzle.Tokenf(string(c), "error reading %q, expecting [", line)
				}
			case 1:
				if c != ' ' {
					ship.Stacks[stack] = append(ship.Stacks[stack], c)
				}
			case 2:
				if c != ']' && c != ' ' {
					return nil, puzzle.Tokenf(string(c), "error reading %q, expecting ]", line)
				}
			case 3:
				if c != ' ' {
					return nil, puzzle.Tokenf(string(c), "error reading %q, expecting space", line)
				}
			}
		}
	}
	return ship, nil
}

func parseMove(line string) (Move, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 6 || parts[0] != "move" || parts[2] != "from" || parts[4] != "to" {
		return Move{}, puzzle.Tokenf(line, "expected a command of move _ from _ to _")
	}
	var nums [3]int
	for i, p := range []string{parts[1], parts[3], parts[5]} {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Move{}, puzzle.Tokenf(p, "couldn't read number in %q: %v", line, err)
		}
		nums[i] = int(n)
	}
	return Move{Count: nums[0], From: nums[1], To: nums[2]}, nil
}

// Solver answers day 5.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 5 }
func (Solver) Title() string { return "Supply Stacks" }

// PartOne uses the CrateMover 9000, which lifts one crate at a time.
func (Solver) PartOne(input string) (string, error) { return run(input, false) }

// PartTwo uses the CrateMover 9001, which lifts many crates at once.
func (Solver) PartTwo(input string) (string, error) { return run(input, true) }

func run(input string, keepOrder bool) (string, error) {
	ship, moves, err := Parse(input)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		if err := ship.Apply(m, keepOrder); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return ship.Tops()
}
