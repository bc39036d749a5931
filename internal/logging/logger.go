// Package logging builds the zap loggers used across advent.
//
// Each subsystem logs under a Category. A category can be switched off in
// the config, in which case For hands back a no-op logger. With DebugMode on,
// output is also appended to a dated file under Dir.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // startup, config loading
	CategoryRunner Category = "runner" // scheduling and timing of solves
	CategoryPuzzle Category = "puzzle" // per-day solver output
	CategoryStore  Category = "store"  // answer history
	CategoryWatch  Category = "watch"  // input file watching
	CategoryGrid   Category = "grid"   // grid parsing and rendering
)

// Categories lists every known category.
var Categories = []Category{
	CategoryBoot, CategoryRunner, CategoryPuzzle,
	CategoryStore, CategoryWatch, CategoryGrid,
}

// Options configures New and For.
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // json or console
	Dir        string
	DebugMode  bool
	Categories map[Category]bool
}

// IsCategoryEnabled reports whether category should log. Categories not in
// the map are enabled.
func (o Options) IsCategoryEnabled(category Category) bool {
	if o.Categories == nil {
		return true
	}
	enabled, ok := o.Categories[category]
	if !ok {
		return true
	}
	return enabled
}

// FilePath returns the debug log file for the given day.
func (o Options) FilePath(now time.Time) string {
	return filepath.Join(o.Dir, fmt.Sprintf("%s_advent.log", now.Format("2006-01-02")))
}

// New builds the root logger.
func New(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	var config zap.Config
	if opts.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	}
	config.Level = level
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	if opts.DebugMode && opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		config.OutputPaths = append(config.OutputPaths, opts.FilePath(time.Now()))
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns base named after category, or a no-op logger when the
// category is disabled.
func For(base *zap.Logger, category Category, opts Options) *zap.Logger {
	if base == nil || !opts.IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	return base.Named(string(category))
}

// Timer helps measure operation duration
type Timer struct {
	logger *zap.Logger
	op     string
	start  time.Time
}

// StartTimer begins timing an operation
func StartTimer(logger *zap.Logger, operation string) *Timer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Timer{
		logger: logger,
		op:     operation,
		start:  time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug(t.op+" completed", zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithInfo ends the timer and logs at info level
func (t *Timer) StopWithInfo() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Info(t.op+" completed", zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs a warning if the duration exceeds threshold.
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		t.logger.Warn(t.op+" was slow",
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", threshold))
	} else {
		t.logger.Debug(t.op+" completed", zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
