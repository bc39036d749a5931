package config

import "advent/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, console
	Dir        string          `yaml:"dir"`        // debug log directory
	DebugMode  bool            `yaml:"debug_mode"` // also write to a dated file in Dir
	Categories map[string]bool `yaml:"categories"` // per-category toggles
}

// LoggingOptions converts the YAML section into logging.Options.
func (c *Config) LoggingOptions() logging.Options {
	cats := make(map[logging.Category]bool, len(c.Logging.Categories))
	for name, on := range c.Logging.Categories {
		cats[logging.Category(name)] = on
	}
	return logging.Options{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		Dir:        c.Logging.Dir,
		DebugMode:  c.Logging.DebugMode,
		Categories: cats,
	}
}
