package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/calendar"
	"advent/internal/config"
	"advent/internal/logging"
	"advent/internal/runner"
	"advent/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputsDir  string
	noStore    bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - Advent of Code 2022 solutions",
	Long: `advent solves the Advent of Code 2022 puzzles from input files.

Inputs are read from <inputs>/NN.txt (or <examples>/NN.txt with --example).
Answers are recorded to a local SQLite history unless --no-store is given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if inputsDir != "" {
			loaded.Inputs.Dir = inputsDir
		}
		if noStore {
			loaded.Store.Enabled = false
		}
		if verbose {
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded

		logger, err = logging.New(cfg.LoggingOptions())
		if err != nil {
			return err
		}
		logging.For(logger, logging.CategoryBoot, cfg.LoggingOptions()).Debug("Config loaded",
			zap.String("path", configPath),
			zap.String("inputs", cfg.Inputs.Dir),
			zap.Bool("store", cfg.Store.Enabled))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "advent.yaml", "Config file")
	rootCmd.PersistentFlags().StringVarP(&inputsDir, "inputs", "i", "", "Inputs directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noStore, "no-store", false, "Do not record answers")

	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "Run only part 1 or 2")
	solveCmd.Flags().BoolVarP(&useExample, "example", "e", false, "Use the example input")
	allCmd.Flags().BoolVarP(&useExample, "example", "e", false, "Use the example inputs")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func source() runner.Source {
	if useExample {
		return runner.SourceExample
	}
	return runner.SourceInput
}

func openStore() (*store.Store, error) {
	s, err := store.NewStore(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	logging.For(logger, logging.CategoryStore, cfg.LoggingOptions()).Debug("Store opened", zap.String("path", s.Path()))
	return s, nil
}

// newRunner builds a runner from cfg. The returned func releases the store.
func newRunner() (*runner.Runner, func(), error) {
	reg, err := calendar.Registry()
	if err != nil {
		return nil, nil, err
	}

	opts := []runner.Option{
		runner.WithInputs(cfg.Inputs.Dir, cfg.Inputs.ExamplesDir),
		runner.WithLogger(logging.For(logger, logging.CategoryRunner, cfg.LoggingOptions())),
		runner.WithWorkers(cfg.Runner.Workers),
		runner.WithTimeout(cfg.GetTimeout()),
	}

	cleanup := func() {}
	if cfg.Store.Enabled {
		s, err := openStore()
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, runner.WithRecorder(s))
		cleanup = func() {
			if err := s.Close(); err != nil {
				logger.Warn("Failed to close store", zap.Error(err))
			}
		}
	}
	return runner.New(reg, opts...), cleanup, nil
}
