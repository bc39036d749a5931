// Package calendar lists every solved day.
package calendar

import (
	"advent/internal/calories"
	"advent/internal/cleanup"
	"advent/internal/crates"
	"advent/internal/filesystem"
	"advent/internal/forest"
	"advent/internal/puzzle"
	"advent/internal/rps"
	"advent/internal/rucksack"
	"advent/internal/signal"
)

// Solvers returns one solver per implemented day, in day order.
func Solvers() []puzzle.Solver {
	return []puzzle.Solver{
		calories.Solver{},
		rps.Solver{},
		rucksack.Solver{},
		cleanup.Solver{},
		crates.Solver{},
		signal.Solver{},
		filesystem.Solver{},
		forest.Solver{},
	}
}

// Registry builds a registry holding Solvers.
func Registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(Solvers()...)
}
