package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/logging"
	"advent/internal/puzzle"
	"advent/internal/runner"
)

var (
	solvePart  int
	useExample bool
)

var solveCmd = &cobra.Command{
	Use:   "solve DAY",
	Short: "Solve one day",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every implemented day",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q: want 1-25", arg)
	}
	return day, nil
}

func selectedParts() ([]puzzle.Part, error) {
	switch solvePart {
	case 0:
		return puzzle.Parts, nil
	case 1, 2:
		return []puzzle.Part{puzzle.Part(solvePart)}, nil
	default:
		return nil, fmt.Errorf("invalid part %d: want 1 or 2", solvePart)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	parts, err := selectedParts()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	r, cleanup, err := newRunner()
	if err != nil {
		return err
	}
	defer cleanup()

	logging.For(logger, logging.CategoryPuzzle, cfg.LoggingOptions()).Debug("Solving",
		zap.Int("day", day), zap.Int("parts", len(parts)), zap.String("source", string(source())))

	results, err := r.Solve(ctx, day, parts, source())
	if err != nil {
		return err
	}
	printResults(cmd.OutOrStdout(), results)
	return failures(results)
}

func runAll(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	r, cleanup, err := newRunner()
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := r.SolveAll(ctx, nil, source())
	printResults(cmd.OutOrStdout(), results)
	if err != nil {
		return err
	}
	return failures(results)
}

func failures(results []runner.Result) error {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d parts failed", failed, len(results))
	}
	return nil
}
