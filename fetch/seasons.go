package fetch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbkit/progress"
)

// SeasonFetcher issues the request for one season of a series.
type SeasonFetcher[S any] func(ctx context.Context, season int) (S, error)

// Seasons fetches seasons 0 through count concurrently. Season 0 holds
// specials and may not exist, and catalogs sometimes declare more seasons
// than they serve, so a fetch failing with ErrNotFound marks that season
// absent instead of failing the call. Present seasons are returned in
// season order.
//
// Any other failure cancels the remaining fetches and is the only error
// returned.
func Seasons[S any](ctx context.Context, count int, fetch SeasonFetcher[S], tracker progress.Tracker, opts ...Option) ([]S, error) {
	if count < 0 {
		return nil, ErrInvalidSeasonCount
	}

	o := newOptions(opts)
	tracker = progress.OrNop(tracker)

	total := count + 1
	children := tracker.CreateChildren(total)

	g, gctx := errgroup.WithContext(ctx)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}

	seasons := make([]S, total)
	present := make([]bool, total)

	for season := range total {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := fetch(gctx, season)
			switch {
			case errors.Is(err, ErrNotFound):
				o.logger.Debug().Int("season", season).Msg("Season not found, skipping")
			case err != nil:
				return &SeasonError{Season: season, Err: err}
			default:
				seasons[season] = result
				present[season] = true
			}

			children[season].MarkCompleted()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]S, 0, total)
	for i, ok := range present {
		if ok {
			out = append(out, seasons[i])
		}
	}

	o.logger.Debug().
		Int("declared", count).
		Int("present", len(out)).
		Msg("Fetched seasons")

	tracker.MarkCompleted()
	return out, nil
}
