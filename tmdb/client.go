package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/s0up4200/tmdbkit/configcache"
	"github.com/s0up4200/tmdbkit/fetch"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultTimeout is the request timeout of the default transport
	DefaultTimeout = 30 * time.Second
	// DefaultConcurrency caps concurrent requests of one fan-out
	DefaultConcurrency = 8
)

// Client is a TMDB API client
type Client struct {
	baseURL     string
	apiKey      string
	language    string
	timeout     time.Duration
	concurrency int
	transport   Transport
	configCache *configcache.Cache[Configuration]
	logger      zerolog.Logger
}

// NewClient creates a new TMDB client. An empty apiKey is accepted; every
// request then fails with ErrMissingAuthorization without touching the
// network.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:     DefaultBaseURL,
		apiKey:      apiKey,
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
		logger:      logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if c.timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	if c.transport == nil {
		c.transport = newHTTPTransport(&http.Client{Timeout: c.timeout})
	}
	if c.configCache == nil {
		c.configCache = NewConfigCache(c)
	}

	return c, nil
}

// NewConfigCache creates a configuration cache that fetches through c.
func NewConfigCache(c *Client) *configcache.Cache[Configuration] {
	return configcache.New(c.fetchConfiguration, c.logger)
}

// fanOutOptions returns the options shared by every fan-out of this client
func (c *Client) fanOutOptions() []fetch.Option {
	return []fetch.Option{
		fetch.WithLimit(c.concurrency),
		fetch.WithLogger(c.logger),
	}
}

// get performs one request and decodes a 2xx body into out
func (c *Client) get(ctx context.Context, r *request, out any) error {
	if c.apiKey == "" {
		return ErrMissingAuthorization
	}

	requestURL := r.url(c.baseURL, c.apiKey, c.language)

	status, body, err := c.transport.Get(ctx, requestURL, acceptJSON)
	if err != nil {
		return &TransportError{URL: redact(requestURL), Err: err}
	}

	if status < 200 || status > 299 {
		return newAPIError(status, body, redact(requestURL))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{URL: redact(requestURL), Err: err}
	}

	return nil
}

// statusResponse is the error envelope TMDB returns with non-2xx statuses
type statusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func newAPIError(status int, body []byte, requestURL string) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
		URL:        requestURL,
	}

	var envelope statusResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.StatusMessage != "" {
		apiErr.Message = envelope.StatusMessage
	}

	return apiErr
}
