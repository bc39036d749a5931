package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all advent configuration.
type Config struct {
	Inputs  InputsConfig  `yaml:"inputs"`
	Runner  RunnerConfig  `yaml:"runner"`
	Store   StoreConfig   `yaml:"store"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig says where puzzle inputs live.
type InputsConfig struct {
	Dir         string `yaml:"dir"`          // real inputs, NN.txt
	ExamplesDir string `yaml:"examples_dir"` // worked examples, NN.txt
}

// RunnerConfig bounds how puzzles run.
type RunnerConfig struct {
	Workers int    `yaml:"workers"`
	Timeout string `yaml:"timeout"`
}

// StoreConfig configures the answer history database.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// WatchConfig configures `advent watch`.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Dir:         "inputs",
			ExamplesDir: "examples",
		},
		Runner: RunnerConfig{
			Workers: 4,
			Timeout: "30s",
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    "data/advent.db",
		},
		Watch: WatchConfig{
			Debounce: "200ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Dir:    "logs",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file means defaults, still subject to env overrides.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("ADVENT_INPUTS"); dir != "" {
		c.Inputs.Dir = dir
	}
	if dir := os.Getenv("ADVENT_EXAMPLES"); dir != "" {
		c.Inputs.ExamplesDir = dir
	}
	if path := os.Getenv("ADVENT_DB"); path != "" {
		c.Store.Path = path
	}
	// Unparseable worker counts are ignored rather than failing startup.
	if w := os.Getenv("ADVENT_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			c.Runner.Workers = n
		}
	}
	if level := os.Getenv("ADVENT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetTimeout returns the per-run timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Runner.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetDebounce returns the watch debounce interval as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 200 * time.Millisecond
	}
	return d
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Inputs.Dir == "" {
		return fmt.Errorf("inputs.dir must be set (or ADVENT_INPUTS)")
	}
	if c.Runner.Workers < 1 {
		return fmt.Errorf("runner.workers must be at least 1, got %d", c.Runner.Workers)
	}
	if _, err := time.ParseDuration(c.Runner.Timeout); err != nil {
		return fmt.Errorf("invalid runner.timeout %q: %w", c.Runner.Timeout, err)
	}
	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("store.path must be set when the store is enabled")
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	return nil
}
