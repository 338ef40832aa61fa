package tmdb

import (
	"context"
	"fmt"

	"github.com/s0up4200/tmdbkit/fetch"
	"github.com/s0up4200/tmdbkit/progress"
)

// Movie retrieves a movie with its images and external ids
func (c *Client) Movie(ctx context.Context, id int) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, movieRequest(id), &movie); err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return &movie, nil
}

// TVSeries retrieves a series with its images and external ids
func (c *Client) TVSeries(ctx context.Context, id int) (*TVSeries, error) {
	var series TVSeries
	if err := c.get(ctx, tvSeriesRequest(id), &series); err != nil {
		return nil, fmt.Errorf("failed to get TV series %d: %w", id, err)
	}
	return &series, nil
}

// Season retrieves one season of a series. A season the catalog does not
// serve yields an *APIError whose IsNotFound is true.
func (c *Client) Season(ctx context.Context, seriesID, season int) (*Season, error) {
	var s Season
	if err := c.get(ctx, seasonRequest(seriesID, season), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SeriesDetails retrieves a series and then all of its seasons.
func (c *Client) SeriesDetails(ctx context.Context, id int, tracker progress.Tracker) (*SeriesDetails, error) {
	series, err := c.TVSeries(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.SeasonDetails(ctx, series, tracker)
}

// SeasonDetails fetches seasons 0 through series.NumberOfSeasons
// concurrently and attaches the ones the catalog serves. Seasons answering
// 404 are left out; any other failure fails the call.
func (c *Client) SeasonDetails(ctx context.Context, series *TVSeries, tracker progress.Tracker) (*SeriesDetails, error) {
	if series == nil {
		return nil, ErrSeriesRequired
	}

	seasons, err := fetch.Seasons(ctx, series.NumberOfSeasons, func(ctx context.Context, season int) (Season, error) {
		s, err := c.Season(ctx, series.ID, season)
		if err != nil {
			return Season{}, err
		}
		return *s, nil
	}, tracker, c.fanOutOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasons of TV series %d: %w", series.ID, err)
	}

	c.logger.Debug().
		Int("series_id", series.ID).
		Int("declared_seasons", series.NumberOfSeasons).
		Int("present_seasons", len(seasons)).
		Msg("Retrieved series details")

	return &SeriesDetails{
		TVSeries: *series,
		Seasons:  seasons,
	}, nil
}
