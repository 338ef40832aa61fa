package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. Without an
// explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tmdbkit"))
		}

		// Check /etc
		v.AddConfigPath("/etc/tmdbkit/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.timeout", "30s")
	v.SetDefault("tmdb.language", "")

	// Fetch defaults
	v.SetDefault("fetch.concurrency", 8)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// Output defaults
	v.SetDefault("output.progress", true)
}

// bindEnv maps TMDBKIT_SECTION_KEY variables onto config keys. The API key
// also honours the conventional TMDB_API_KEY.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("tmdbkit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("tmdb.api_key", "TMDBKIT_TMDB_API_KEY", "TMDB_API_KEY")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url is required")
	}

	if cfg.TMDB.Timeout <= 0 {
		return fmt.Errorf("tmdb.timeout must be positive")
	}

	if cfg.Fetch.Concurrency < 0 {
		return fmt.Errorf("fetch.concurrency must not be negative: %d", cfg.Fetch.Concurrency)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	return nil
}
