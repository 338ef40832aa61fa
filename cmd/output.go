package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/s0up4200/tmdbkit/tmdb"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yearLabel(year int) string {
	if year == 0 {
		return "unknown"
	}
	return fmt.Sprint(year)
}

func printMovies(w io.Writer, movies []tmdb.MovieSummary) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return
	}

	fmt.Fprintf(w, "\nFound %d movies:\n", len(movies))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, m := range movies {
		fmt.Fprintf(w, "• %s (%s) [id %d] ★ %.1f (%d votes)\n",
			m.Title, yearLabel(m.Year()), m.ID, m.VoteAverage, m.VoteCount)
	}
}

func printSeries(w io.Writer, series []tmdb.TVSeriesSummary) {
	if len(series) == 0 {
		fmt.Fprintln(w, "No TV series found.")
		return
	}

	fmt.Fprintf(w, "\nFound %d TV series:\n", len(series))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, s := range series {
		fmt.Fprintf(w, "• %s (%s) [id %d] ★ %.1f (%d votes)\n",
			s.Name, yearLabel(s.Year()), s.ID, s.VoteAverage, s.VoteCount)
	}
}

func genreNames(genres []tmdb.Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func printMovie(w io.Writer, m *tmdb.Movie) {
	fmt.Fprintf(w, "%s (%s)\n", m.Title, yearLabel(m.Year()))
	if m.Tagline != "" {
		fmt.Fprintf(w, "  %s\n", m.Tagline)
	}
	fmt.Fprintf(w, "  Status: %s\n", m.Status)
	if m.Runtime > 0 {
		fmt.Fprintf(w, "  Runtime: %d min\n", m.Runtime)
	}
	if len(m.Genres) > 0 {
		fmt.Fprintf(w, "  Genres: %s\n", genreNames(m.Genres))
	}
	if m.ExternalIDs.IMDBID != "" {
		fmt.Fprintf(w, "  IMDb: %s\n", m.ExternalIDs.IMDBID)
	}
	fmt.Fprintf(w, "  Rating: %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	fmt.Fprintf(w, "  Posters: %d, Backdrops: %d\n", len(m.Images.Posters), len(m.Images.Backdrops))
	if m.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", m.Overview)
	}
}

func printSeriesDetails(w io.Writer, d *tmdb.SeriesDetails) {
	fmt.Fprintf(w, "%s (%s)\n", d.Name, yearLabel(d.Year()))
	fmt.Fprintf(w, "  Status: %s\n", d.Status)
	if len(d.Genres) > 0 {
		fmt.Fprintf(w, "  Genres: %s\n", genreNames(d.Genres))
	}
	if d.ExternalIDs.TVDBID != 0 {
		fmt.Fprintf(w, "  TVDB: %d\n", d.ExternalIDs.TVDBID)
	}
	fmt.Fprintf(w, "  Seasons: %d declared, %d retrieved\n", d.NumberOfSeasons, len(d.Seasons))
	fmt.Fprintf(w, "  Episodes: %d\n", len(d.Episodes()))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i := range d.Seasons {
		printSeason(w, &d.Seasons[i])
	}
}

func printSeason(w io.Writer, s *tmdb.Season) {
	fmt.Fprintf(w, "• %s (%d episodes)\n", s.Name, len(s.Episodes))
	for _, e := range s.Episodes {
		fmt.Fprintf(w, "    S%02dE%02d %s", e.SeasonNumber, e.EpisodeNumber, e.Name)
		if e.AirDate != "" {
			fmt.Fprintf(w, " (%s)", e.AirDate)
		}
		fmt.Fprintln(w)
	}
}
