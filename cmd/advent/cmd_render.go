package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/forest"
	"advent/internal/grid"
	"advent/internal/logging"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Draw the visible trees of a day 8 height map",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logging.For(logger, logging.CategoryGrid, cfg.LoggingOptions())

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read height map: %w", err)
	}
	timer := logging.StartTimer(log, "parse")
	heights, err := grid.ParseDigits(string(data))
	if err != nil {
		return err
	}
	timer.Stop()
	log.Debug("Parsed height map", zap.Int("width", heights.Width()), zap.Int("height", heights.Height()))

	visible, err := forest.Visible[uint8](heights)
	if err != nil {
		return err
	}
	best, err := forest.BestScenicScore[uint8](heights)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderForest(heights, visible, best))
	printNote(out, fmt.Sprintf("%d of %d trees visible; best spot (%d,%d) scores %d",
		visible.Count(), heights.Width()*heights.Height(), best.X, best.Y, best.Score))
	return nil
}
