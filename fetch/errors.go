package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a per-item absence. Season fetches that fail with an
	// error matching ErrNotFound are folded into the result as absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSeasonCount is returned for a negative season count
	ErrInvalidSeasonCount = errors.New("season count must not be negative")

	// ErrTooManyPages is returned when the first page reports more pages
	// than the configured maximum
	ErrTooManyPages = errors.New("implausible total page count")
)

// PageError identifies the page whose fetch failed.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// SeasonError identifies the season whose fetch failed.
type SeasonError struct {
	Season int
	Err    error
}

func (e *SeasonError) Error() string {
	return fmt.Sprintf("fetch season %d: %v", e.Season, e.Err)
}

func (e *SeasonError) Unwrap() error {
	return e.Err
}
