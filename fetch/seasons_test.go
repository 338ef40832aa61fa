package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbkit/progress"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d", e.code)
}

func (e *statusError) Is(target error) bool {
	return target == ErrNotFound && e.code == 404
}

func TestSeasonsAbsenceTolerant(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		missing  map[int]bool
		expected []int
	}{
		{
			name:     "all present",
			count:    3,
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "no specials",
			count:    3,
			missing:  map[int]bool{0: true},
			expected: []int{1, 2, 3},
		},
		{
			name:     "declared count exceeds catalog",
			count:    4,
			missing:  map[int]bool{0: true, 4: true},
			expected: []int{1, 2, 3},
		},
		{
			name:     "everything missing",
			count:    2,
			missing:  map[int]bool{0: true, 1: true, 2: true},
			expected: []int{},
		},
		{
			name:     "zero seasons",
			count:    0,
			expected: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			fetch := func(ctx context.Context, season int) (int, error) {
				calls.Add(1)
				if tt.missing[season] {
					return 0, &statusError{code: 404}
				}
				return season, nil
			}

			root := progress.New()
			seasons, err := Seasons(context.Background(), tt.count, fetch, root)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, seasons)
			assert.Equal(t, int32(tt.count+1), calls.Load())
			assert.Equal(t, tt.count+1, root.Len())
			assert.Equal(t, 1.0, root.Value())
		})
	}
}

func TestSeasonsHardFailure(t *testing.T) {
	fetch := func(ctx context.Context, season int) (string, error) {
		switch season {
		case 0:
			return "", &statusError{code: 404}
		case 2:
			return "", &statusError{code: 500}
		default:
			return fmt.Sprintf("season %d", season), nil
		}
	}

	root := progress.New()
	seasons, err := Seasons(context.Background(), 3, fetch, root)
	require.Error(t, err)
	assert.Nil(t, seasons)
	assert.False(t, root.Completed())

	var seasonErr *SeasonError
	require.ErrorAs(t, err, &seasonErr)
	assert.Equal(t, 2, seasonErr.Season)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestSeasonsNegativeCount(t *testing.T) {
	called := false
	fetch := func(ctx context.Context, season int) (int, error) {
		called = true
		return season, nil
	}

	_, err := Seasons(context.Background(), -1, fetch, nil)
	assert.ErrorIs(t, err, ErrInvalidSeasonCount)
	assert.False(t, called)
}

func TestSeasonsCancelsOnFailure(t *testing.T) {
	boom := errors.New("connection reset")
	var calls atomic.Int32

	fetch := func(ctx context.Context, season int) (int, error) {
		calls.Add(1)
		if season == 0 {
			return 0, boom
		}
		<-ctx.Done()
		return 0, ctx.Err()
	}

	_, err := Seasons(context.Background(), 20, fetch, nil, WithLimit(2))
	require.ErrorIs(t, err, boom)
	assert.LessOrEqual(t, int(calls.Load()), 3)
}
