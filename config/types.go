package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Language string        `mapstructure:"language"`
}

// FetchConfig controls concurrent fan-out
type FetchConfig struct {
	// Concurrency is the maximum number of requests in flight per fan-out.
	// Zero means unbounded.
	Concurrency int `mapstructure:"concurrency"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig contains terminal output settings
type OutputConfig struct {
	Progress bool `mapstructure:"progress"`
}

// Preset returns the expression stored under name, or name itself when no
// such preset exists
func (c FilterConfig) Preset(name string) string {
	if expression, ok := c.Presets[name]; ok {
		return expression
	}
	return name
}
