package tmdb

import (
	"context"
	"fmt"
)

// Find looks up media by an external id
func (c *Client) Find(ctx context.Context, externalID string, source ExternalSource) (*FindResult, error) {
	if externalID == "" {
		return nil, fmt.Errorf("external id is required")
	}

	var result FindResult
	if err := c.get(ctx, findRequest(externalID, source), &result); err != nil {
		return nil, fmt.Errorf("failed to find %s %s: %w", source, externalID, err)
	}
	return &result, nil
}

// FindMovies looks up movies by IMDb id
func (c *Client) FindMovies(ctx context.Context, imdbID string) ([]MovieSummary, error) {
	result, err := c.Find(ctx, imdbID, ExternalSourceIMDB)
	if err != nil {
		return nil, err
	}
	return result.Movies, nil
}

// FindTVSeries looks up series by TheTVDB id
func (c *Client) FindTVSeries(ctx context.Context, tvdbID string) ([]TVSeriesSummary, error) {
	result, err := c.Find(ctx, tvdbID, ExternalSourceTVDB)
	if err != nil {
		return nil, err
	}
	return result.TVSeries, nil
}
