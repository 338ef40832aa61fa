package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var findSource string

var findCmd = &cobra.Command{
	Use:   "find <external-id>",
	Short: "Look up movies and series by IMDb or TheTVDB id",
	Example: `  tmdbkit find tt0133093
  tmdbkit find 121361 --source tvdb`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVar(&findSource, "source", "imdb", "external id source (imdb or tvdb)")
}

func parseSource(s string) (tmdb.ExternalSource, error) {
	switch strings.ToLower(s) {
	case "imdb", string(tmdb.ExternalSourceIMDB):
		return tmdb.ExternalSourceIMDB, nil
	case "tvdb", string(tmdb.ExternalSourceTVDB):
		return tmdb.ExternalSourceTVDB, nil
	}
	return "", fmt.Errorf("invalid source: %s (must be 'imdb' or 'tvdb')", s)
}

func runFind(cmd *cobra.Command, args []string) error {
	source, err := parseSource(findSource)
	if err != nil {
		return err
	}

	result, err := client.Find(cmd.Context(), args[0], source)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), result)
	}

	w := cmd.OutOrStdout()
	if len(result.Movies) == 0 && len(result.TVSeries) == 0 {
		fmt.Fprintf(w, "Nothing found for %s.\n", args[0])
		return nil
	}
	if len(result.Movies) > 0 {
		printMovies(w, result.Movies)
	}
	if len(result.TVSeries) > 0 {
		printSeries(w, result.TVSeries)
	}
	return nil
}
