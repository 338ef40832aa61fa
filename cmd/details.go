package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show a movie with its images and external ids",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovie,
}

var seriesCmd = &cobra.Command{
	Use:   "series <id>",
	Short: "Show a TV series with every season and episode",
	Long: `Show a TV series with every season and episode.

Seasons are fetched concurrently. A season the catalog does not serve,
typically the specials season, is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeries,
}

var seasonCmd = &cobra.Command{
	Use:   "season <series-id> <season>",
	Short: "Show one season of a TV series",
	Args:  cobra.ExactArgs(2),
	RunE:  runSeason,
}

func init() {
	rootCmd.AddCommand(movieCmd, seriesCmd, seasonCmd)
}

func parseID(name, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, value)
	}
	return id, nil
}

func runMovie(cmd *cobra.Command, args []string) error {
	id, err := parseID("movie id", args[0])
	if err != nil {
		return err
	}

	movie, err := client.Movie(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), movie)
	}
	printMovie(cmd.OutOrStdout(), movie)
	return nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	id, err := parseID("series id", args[0])
	if err != nil {
		return err
	}

	tracker, finish := startProgress("Fetching seasons")
	details, err := client.SeriesDetails(cmd.Context(), id, tracker)
	finish()
	if err != nil {
		return err
	}

	logger.Debug().
		Int("series_id", id).
		Int("seasons", len(details.Seasons)).
		Msg("Fetched series")

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), details)
	}
	printSeriesDetails(cmd.OutOrStdout(), details)
	return nil
}

func runSeason(cmd *cobra.Command, args []string) error {
	seriesID, err := parseID("series id", args[0])
	if err != nil {
		return err
	}
	number, err := parseID("season number", args[1])
	if err != nil {
		return err
	}

	season, err := client.Season(cmd.Context(), seriesID, number)
	if err != nil {
		return fmt.Errorf("failed to get season %d of TV series %d: %w", number, seriesID, err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), season)
	}
	printSeason(cmd.OutOrStdout(), season)
	return nil
}
