package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/config"
	"github.com/s0up4200/tmdbkit/tmdb"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *tmdb.Client
	logLevel   string
	noProgress bool
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbkit",
	Short: "Query The Movie Database with concurrent page and season fetching",
	Long: `tmdbkit searches The Movie Database and retrieves movie and series details.

Search results are collected across every result page and series details
include every season, fetched concurrently with a live progress bar.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override level from command line if specified
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	if cfg.TMDB.APIKey == "" {
		logger.Debug().Msg("No API key configured; set TMDB_API_KEY or tmdb.api_key")
	}

	opts := []tmdb.Option{
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithConcurrency(cfg.Fetch.Concurrency),
	}
	if cfg.TMDB.Language != "" {
		opts = append(opts, tmdb.WithLanguage(cfg.TMDB.Language))
	}

	client, err = tmdb.NewClient(cfg.TMDB.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
