// Package puzzle defines what a daily solution looks like and the small
// pieces every day shares: the solver contract, a registry keyed by day,
// input file lookup, and TokenError.
package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Solver answers both parts of one day's puzzle from its raw input.
type Solver interface {
	Day() int
	Title() string
	PartOne(input string) (string, error)
	PartTwo(input string) (string, error)
}

// Part selects one of the two answers.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

// Solve runs one part of s.
func Solve(s Solver, part Part, input string) (string, error) {
	switch part {
	case PartOne:
		return s.PartOne(input)
	case PartTwo:
		return s.PartTwo(input)
	default:
		return "", fmt.Errorf("day %d has no part %d", s.Day(), part)
	}
}

// Registry maps day numbers to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry returns a registry holding solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s. Registering a day twice is an error.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.Day() < 1 || s.Day() > 25 {
		return fmt.Errorf("day %d out of range 1-25", s.Day())
	}
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("day %d already registered", s.Day())
	}
	r.solvers[s.Day()] = s
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	return s, ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// InputPath returns the conventional file for a day under dir, e.g.
// inputs/08.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// ReadInput loads the input for day from dir.
func ReadInput(dir string, day int) (string, error) {
	data, err := os.ReadFile(InputPath(dir, day))
	if err != nil {
		return "", fmt.Errorf("failed to read input for day %d: %w", day, err)
	}
	return string(data), nil
}
