package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/logging"
	"advent/internal/puzzle"
	"advent/internal/runner"
	"advent/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [DAY]",
	Short: "Re-solve a day whenever its input file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	only := 0
	if len(args) == 1 {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		only = day
	}

	ctx, cancel := signalContext()
	defer cancel()

	r, cleanup, err := newRunner()
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	log := logging.For(logger, logging.CategoryWatch, cfg.LoggingOptions())
	onChange := func(ctx context.Context, day int) {
		if only != 0 && day != only {
			return
		}
		results, err := r.Solve(ctx, day, puzzle.Parts, runner.SourceInput)
		if err != nil {
			log.Warn("Solve failed", zap.Int("day", day), zap.Error(err))
			return
		}
		printResults(out, results)
	}

	w, err := watch.NewWatcher(cfg.Inputs.Dir, cfg.GetDebounce(), onChange, watch.WithLogger(log))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	printNote(out, "watching "+cfg.Inputs.Dir+" (ctrl-c to stop)")

	<-ctx.Done()
	w.Stop()
	stats := w.Stats()
	log.Info("Watch finished", zap.Int("triggered", stats.Triggered), zap.Int("errors", stats.Errors))
	return nil
}
