package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ADVENT_INPUTS", "ADVENT_EXAMPLES", "ADVENT_DB", "ADVENT_WORKERS", "ADVENT_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Inputs.Dir != "inputs" {
		t.Errorf("expected Inputs.Dir=inputs, got %s", cfg.Inputs.Dir)
	}
	if cfg.Runner.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Runner.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "advent.yaml")

	cfg := DefaultConfig()
	cfg.Inputs.Dir = "/srv/aoc"
	cfg.Runner.Workers = 9
	cfg.Logging.Categories = map[string]bool{"store": false}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, "/srv/aoc", loaded.Inputs.Dir)
	assert.Equal(t, 9, loaded.Runner.Workers)
	opts := loaded.LoggingOptions()
	assert.False(t, opts.IsCategoryEnabled(logging.CategoryStore))
	assert.True(t, opts.IsCategoryEnabled(logging.CategoryRunner))
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runner:\n  timeout: 5s\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.GetTimeout())
	assert.Equal(t, 4, cfg.Runner.Workers)
	assert.Equal(t, "inputs", cfg.Inputs.Dir)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runner: [unterminated"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("paths and level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADVENT_INPUTS", "/in")
		t.Setenv("ADVENT_EXAMPLES", "/ex")
		t.Setenv("ADVENT_DB", "/db/runs.db")
		t.Setenv("ADVENT_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/in", cfg.Inputs.Dir)
		assert.Equal(t, "/ex", cfg.Inputs.ExamplesDir)
		assert.Equal(t, "/db/runs.db", cfg.Store.Path)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("workers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADVENT_WORKERS", "12")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 12, cfg.Runner.Workers)
	})

	t.Run("bad workers ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADVENT_WORKERS", "lots")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 4, cfg.Runner.Workers)
	})
}

func TestDurations_Fallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 30*time.Second, cfg.GetTimeout())
	assert.Equal(t, 200*time.Millisecond, cfg.GetDebounce())

	cfg.Watch.Debounce = "1s"
	assert.Equal(t, time.Second, cfg.GetDebounce())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no inputs", func(c *Config) { c.Inputs.Dir = "" }, "inputs.dir"},
		{"no workers", func(c *Config) { c.Runner.Workers = 0 }, "runner.workers"},
		{"bad timeout", func(c *Config) { c.Runner.Timeout = "soon" }, "runner.timeout"},
		{"store without path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid logging level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("disabled store needs no path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Store.Enabled = false
		cfg.Store.Path = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoggingOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.DebugMode = true
	cfg.Logging.Categories = map[string]bool{"watch": false}

	opts := cfg.LoggingOptions()
	assert.Equal(t, "info", opts.Level)
	assert.True(t, opts.DebugMode)
	assert.False(t, opts.Categories[logging.CategoryWatch])
}
