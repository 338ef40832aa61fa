package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/s0up4200/tmdbkit/progress"
)

// DefaultImageSize is used when no size token is given
const DefaultImageSize = "original"

// Configuration returns the API configuration record. It is fetched once
// per client and shared by concurrent callers; a failed fetch is not cached.
func (c *Client) Configuration(ctx context.Context) (*Configuration, error) {
	cfg, err := c.configCache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) fetchConfiguration(ctx context.Context) (Configuration, error) {
	var cfg Configuration
	if err := c.get(ctx, configurationRequest(), &cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to get configuration: %w", err)
	}

	c.logger.Debug().
		Str("secure_base_url", cfg.Images.SecureBaseURL).
		Msg("Retrieved API configuration")

	return cfg, nil
}

// ImageURL resolves an image path to an absolute URL of the given size.
// An empty size selects DefaultImageSize.
func (c *Client) ImageURL(ctx context.Context, path, size string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("image path is required")
	}
	if size == "" {
		size = DefaultImageSize
	}

	cfg, err := c.Configuration(ctx)
	if err != nil {
		return "", err
	}

	base, err := url.Parse(cfg.Images.SecureBaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.Images.SecureBaseURL)
	}

	return base.JoinPath(size, strings.TrimPrefix(path, "/")).String(), nil
}

// Image downloads an image and returns its raw bytes. tracker is completed
// once the body has been read.
func (c *Client) Image(ctx context.Context, path, size string, tracker progress.Tracker) ([]byte, error) {
	tracker = progress.OrNop(tracker)

	imageURL, err := c.ImageURL(ctx, path, size)
	if err != nil {
		return nil, err
	}

	status, body, err := c.transport.Get(ctx, imageURL, acceptImage)
	if err != nil {
		return nil, &TransportError{URL: imageURL, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, newAPIError(status, body, imageURL)
	}

	tracker.MarkCompleted()

	c.logger.Debug().Str("url", imageURL).Int("bytes", len(body)).Msg("Downloaded image")
	return body, nil
}
