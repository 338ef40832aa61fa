package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL: "https://api.themoviedb.org/3",
			Timeout: 30 * time.Second,
		},
		Fetch: FetchConfig{Concurrency: 8},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:   "missing api key is allowed",
			mutate: func(c *Config) { c.TMDB.APIKey = "" },
		},
		{
			name:   "unbounded concurrency",
			mutate: func(c *Config) { c.Fetch.Concurrency = 0 },
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.TMDB.BaseURL = "" },
			wantErr: "tmdb.base_url is required",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.TMDB.Timeout = 0 },
			wantErr: "tmdb.timeout must be positive",
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Fetch.Concurrency = -1 },
			wantErr: "fetch.concurrency",
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
		{
			name: "empty preset",
			mutate: func(c *Config) {
				c.Filter.Presets = map[string]string{"recent": " "}
			},
			wantErr: `filter preset "recent"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
tmdb:
  api_key: file-key
  timeout: 5s
  language: de-DE
fetch:
  concurrency: 2
filter:
  presets:
    recent: "Year >= 2020"
logging:
  level: debug
output:
  progress: false
`), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "file-key", cfg.TMDB.APIKey)
		assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
		assert.Equal(t, "de-DE", cfg.TMDB.Language)
		assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
		assert.Equal(t, 2, cfg.Fetch.Concurrency)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.False(t, cfg.Output.Progress)
		assert.Equal(t, "Year >= 2020", cfg.Filter.Preset("recent"))
		assert.Equal(t, "Year < 1990", cfg.Filter.Preset("Year < 1990"))
	})

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("defaults without file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)
		assert.Equal(t, 8, cfg.Fetch.Concurrency)
		assert.True(t, cfg.Output.Progress)
	})

	t.Run("environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("TMDB_API_KEY", "env-key")
		t.Setenv("TMDBKIT_FETCH_CONCURRENCY", "3")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "env-key", cfg.TMDB.APIKey)
		assert.Equal(t, 3, cfg.Fetch.Concurrency)
	})
}
