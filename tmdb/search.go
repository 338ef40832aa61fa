package tmdb

import (
	"context"
	"fmt"

	"github.com/s0up4200/tmdbkit/fetch"
	"github.com/s0up4200/tmdbkit/progress"
)

// MovieSearchOptions narrows a movie search. Zero values are omitted.
type MovieSearchOptions struct {
	Year               int
	PrimaryReleaseYear int
}

// TVSearchOptions narrows a TV search. Zero values are omitted.
type TVSearchOptions struct {
	FirstAirYear int
}

// SearchMovies returns every movie matching query across all result pages.
// Pages after the first are fetched concurrently, so the order of results
// across pages is not meaningful.
func (c *Client) SearchMovies(ctx context.Context, query string, opts MovieSearchOptions, tracker progress.Tracker) ([]MovieSummary, error) {
	results, err := fetch.All(ctx, func(ctx context.Context, page int) (*fetch.Page[MovieSummary], error) {
		return searchPage[MovieSummary](ctx, c, searchMovieRequest(query, opts, page))
	}, tracker, c.fanOutOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies for %q: %w", query, err)
	}

	c.logger.Debug().Str("query", query).Int("count", len(results)).Msg("Searched movies")
	return results, nil
}

// SearchTVSeries returns every series matching query across all result
// pages. Order across pages is not meaningful.
func (c *Client) SearchTVSeries(ctx context.Context, query string, opts TVSearchOptions, tracker progress.Tracker) ([]TVSeriesSummary, error) {
	results, err := fetch.All(ctx, func(ctx context.Context, page int) (*fetch.Page[TVSeriesSummary], error) {
		return searchPage[TVSeriesSummary](ctx, c, searchTVRequest(query, opts, page))
	}, tracker, c.fanOutOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to search TV series for %q: %w", query, err)
	}

	c.logger.Debug().Str("query", query).Int("count", len(results)).Msg("Searched TV series")
	return results, nil
}

func searchPage[T any](ctx context.Context, c *Client, r *request) (*fetch.Page[T], error) {
	var response searchResponse[T]
	if err := c.get(ctx, r, &response); err != nil {
		return nil, err
	}

	return &fetch.Page[T]{
		Items:      response.Results,
		Index:      response.Page,
		TotalPages: response.TotalPages,
	}, nil
}
