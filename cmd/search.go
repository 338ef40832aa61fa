package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/filter"
	"github.com/s0up4200/tmdbkit/tmdb"
)

var (
	filterExpr         string
	searchYear         int
	primaryReleaseYear int
	firstAirYear       int
)

// searchCmd groups the search commands
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies or TV series across every result page",
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie <query>",
	Short: "Search movies",
	Long: `Search movies by title. Every result page is fetched.

The --filter flag takes an expression or the name of a preset from
filter.presets, for example:

  tmdbkit search movie star --filter 'Year >= 2000 and VoteAverage > 7'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchMovie,
}

var searchTVCmd = &cobra.Command{
	Use:   "tv <query>",
	Short: "Search TV series",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchTV,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchMovieCmd, searchTVCmd)

	searchCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or preset name")

	searchMovieCmd.Flags().IntVar(&searchYear, "year", 0, "restrict to a release year")
	searchMovieCmd.Flags().IntVar(&primaryReleaseYear, "primary-release-year", 0, "restrict to a primary release year")

	searchTVCmd.Flags().IntVar(&firstAirYear, "first-air-year", 0, "restrict to a first air year")
}

// compileFilter resolves presets and compiles the --filter flag. A nil
// filter means no filtering.
func compileFilter() (*filter.Filter, error) {
	if filterExpr == "" {
		return nil, nil
	}

	expression := cfg.Filter.Preset(filterExpr)
	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Debug().Str("filter", expression).Msg("Compiled filter")
	return f, nil
}

func runSearchMovie(cmd *cobra.Command, args []string) error {
	f, err := compileFilter()
	if err != nil {
		return err
	}

	query := args[0]
	logger.Info().Str("query", query).Msg("Searching movies")

	tracker, finish := startProgress("Searching movies")
	movies, err := client.SearchMovies(cmd.Context(), query, tmdb.MovieSearchOptions{
		Year:               searchYear,
		PrimaryReleaseYear: primaryReleaseYear,
	}, tracker)
	finish()
	if err != nil {
		return err
	}

	if f != nil {
		movies = filter.Movies(f, movies)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), movies)
	}
	printMovies(cmd.OutOrStdout(), movies)
	return nil
}

func runSearchTV(cmd *cobra.Command, args []string) error {
	f, err := compileFilter()
	if err != nil {
		return err
	}

	query := args[0]
	logger.Info().Str("query", query).Msg("Searching TV series")

	tracker, finish := startProgress("Searching TV series")
	series, err := client.SearchTVSeries(cmd.Context(), query, tmdb.TVSearchOptions{
		FirstAirYear: firstAirYear,
	}, tracker)
	finish()
	if err != nil {
		return err
	}

	if f != nil {
		series = filter.Series(f, series)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), series)
	}
	printSeries(cmd.OutOrStdout(), series)
	return nil
}
