package fetch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbkit/progress"
)

// Page is one decoded page of a paginated resource.
type Page[T any] struct {
	Items      []T
	Index      int
	TotalPages int
}

// PageFetcher issues the request for one page. It is called concurrently
// with different page numbers and must not share mutable state between
// calls.
type PageFetcher[T any] func(ctx context.Context, page int) (*Page[T], error)

// All fetches page 1, then every remaining page concurrently, and returns
// the concatenation of their items. Items keep their order within a page.
//
// The first failing page cancels the others and is the only error
// returned. A first page reporting more than the maximum page count (see
// WithMaxPages) fails with ErrTooManyPages before any other page is
// fetched. No partial result is returned on failure.
func All[T any](ctx context.Context, fetch PageFetcher[T], tracker progress.Tracker, opts ...Option) ([]T, error) {
	o := newOptions(opts)
	tracker = progress.OrNop(tracker)

	first, err := fetch(ctx, 1)
	if err != nil {
		return nil, &PageError{Page: 1, Err: err}
	}
	if first == nil {
		first = &Page[T]{}
	}

	if first.TotalPages > o.maxPages {
		return nil, &PageError{
			Page: 1,
			Err:  fmt.Errorf("%w: %d exceeds %d", ErrTooManyPages, first.TotalPages, o.maxPages),
		}
	}

	if first.TotalPages <= 1 {
		tracker.MarkCompleted()
		return first.Items, nil
	}

	remaining := first.TotalPages - 1
	children := tracker.CreateChildren(remaining)

	o.logger.Debug().
		Int("total_pages", first.TotalPages).
		Int("first_page_items", len(first.Items)).
		Msg("Fetching remaining pages")

	g, gctx := errgroup.WithContext(ctx)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}

	// One slot per page; each goroutine owns its slot.
	pages := make([][]T, remaining)

	for i := range remaining {
		// Stop launching once a failure has cancelled the group.
		if gctx.Err() != nil {
			break
		}

		page := i + 2
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := fetch(gctx, page)
			if err != nil {
				return &PageError{Page: page, Err: err}
			}

			if result != nil {
				pages[i] = result.Items
			}
			children[i].MarkCompleted()

			o.logger.Debug().
				Int("page", page).
				Int("items", len(pages[i])).
				Msg("Fetched page")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := len(first.Items)
	for _, items := range pages {
		total += len(items)
	}

	all := make([]T, 0, total)
	all = append(all, first.Items...)
	for _, items := range pages {
		all = append(all, items...)
	}

	tracker.MarkCompleted()
	return all, nil
}
