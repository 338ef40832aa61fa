package tmdb

import (
	"net/http"
	"strings"
	"time"

	"github.com/s0up4200/tmdbkit/configcache"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout of the default HTTP transport. It has no
// effect when WithTransport or WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transport = newHTTPTransport(client)
	}
}

// WithTransport replaces the transport entirely.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithConcurrency caps the number of concurrent requests of one fan-out.
// Zero means no cap.
func WithConcurrency(limit int) Option {
	return func(c *Client) {
		if limit >= 0 {
			c.concurrency = limit
		}
	}
}

// WithLanguage sets the language parameter sent with every request.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithConfigCache shares a configuration cache between clients, typically
// one built with NewConfigCache from the first client of the process.
func WithConfigCache(cache *configcache.Cache[Configuration]) Option {
	return func(c *Client) {
		c.configCache = cache
	}
}
