package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history DAY",
	Short: "Show recorded answers for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	if !cfg.Store.Enabled {
		return fmt.Errorf("the answer store is disabled")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := signalContext()
	defer cancel()

	entries, err := s.History(ctx, day, historyLimit)
	if err != nil {
		return err
	}
	printHistory(cmd.OutOrStdout(), day, entries)
	return nil
}
