package tmdb

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/tmdbkit/fetch"
)

// Common errors
var (
	// ErrMissingAuthorization indicates no API key is configured. It is
	// returned before any network call is made.
	ErrMissingAuthorization = errors.New("tmdb: missing API key")
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("tmdb: invalid configuration")
	// ErrInvalidBaseURL indicates the image base URL from the configuration
	// endpoint could not be parsed
	ErrInvalidBaseURL = errors.New("tmdb: invalid image base URL")
	// ErrSeriesRequired is returned by SeasonDetails for a nil series
	ErrSeriesRequired = errors.New("tmdb: series is required")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	URL        string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Is lets a 404 match fetch.ErrNotFound, which the season fan-out treats as
// an absent season.
func (e *APIError) Is(target error) bool {
	return target == fetch.ErrNotFound && e.IsNotFound()
}

// TransportError wraps a connectivity failure or timeout.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a malformed response payload.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tmdb decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
