package configcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	BaseURL string
	Sizes   map[string][]string
}

func TestCacheSingleFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	want := &settings{
		BaseURL: "https://image.example.org/t/p/",
		Sizes:   map[string][]string{"poster": {"w92", "original"}},
	}

	cache := New(func(ctx context.Context) (*settings, error) {
		calls.Add(1)
		<-release
		return want, nil
	}, zerolog.Nop())

	const callers = 10
	results := make([]*settings, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = cache.Get(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	// Give the remaining callers time to join the in-flight fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, want, results[i])
	}

	// Later calls never fetch again.
	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, cache.Loaded())
}

func TestCacheRetriesAfterFailure(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("status 503")

	cache := New(func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", boom
		}
		return "ok", nil
	}, zerolog.Nop())

	_, err := cache.Get(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, cache.Loaded())

	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCacheFailureSharedByWaiters(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	boom := errors.New("connection refused")

	cache := New(func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 0, boom
	}, zerolog.Nop())

	const callers = 5
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = cache.Get(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, err := range errs {
		assert.ErrorIs(t, err, boom)
	}
}

func TestCacheWaiterCancellation(t *testing.T) {
	release := make(chan struct{})
	cache := New(func(ctx context.Context) (string, error) {
		<-release
		return "value", nil
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := cache.Get(ctx)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("waiter did not return after cancellation")
	}

	// The shared fetch was not abandoned.
	close(release)
	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}
