package source_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorpipe/gor-source/internal/mock"
	"github.com/gorpipe/gor-source/pkg/eviction"
	"github.com/gorpipe/gor-source/pkg/failure"
	"github.com/gorpipe/gor-source/pkg/source"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLRUSet() eviction.Set[string] {
	return eviction.NewLRUSet[string]()
}

func TestMetadataCacheExpiration(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	cache := source.NewMetadataCache(clock, 4, 100, 5*time.Minute, newLRUSet)

	fetches := 0
	fetch := func(ctx context.Context) (source.Attributes, error) {
		fetches++
		return source.Attributes{Length: int64(fetches)}, nil
	}

	// Initial fetch, which stores the entry.
	clock.EXPECT().Now().Return(time.Unix(1000, 0))
	attributes, err := cache.Get(ctx, "bucket/key", fetch)
	require.NoError(t, err)
	require.Equal(t, int64(1), attributes.Length)

	// Entries remain valid until they expire.
	clock.EXPECT().Now().Return(time.Unix(1299, 0))
	attributes, err = cache.Get(ctx, "bucket/key", fetch)
	require.NoError(t, err)
	require.Equal(t, int64(1), attributes.Length)

	// Expired entries are refetched.
	clock.EXPECT().Now().Return(time.Unix(1300, 0)).Times(2)
	attributes, err = cache.Get(ctx, "bucket/key", fetch)
	require.NoError(t, err)
	require.Equal(t, int64(2), attributes.Length)
}

func TestMetadataCacheFailuresNotCached(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	cache := source.NewMetadataCache(clock, 4, 100, 5*time.Minute, newLRUSet)

	raw := failure.NewStatusFailure(404, "Not Found", "bucket/key", nil)
	_, err := cache.Get(ctx, "bucket/key", func(ctx context.Context) (source.Attributes, error) {
		return source.Attributes{}, raw
	})
	var executionError *failure.ExecutionError
	require.ErrorAs(t, err, &executionError)
	require.Same(t, raw, executionError.Err)

	attributes, err := cache.Get(ctx, "bucket/key", func(ctx context.Context) (source.Attributes, error) {
		return source.Attributes{Length: 42}, nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), attributes.Length)
}

func TestMetadataCacheEviction(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	// A single shard holding two entries.
	cache := source.NewMetadataCache(clock, 1, 2, 5*time.Minute, newLRUSet)

	fetches := map[string]int{}
	get := func(key string) {
		_, err := cache.Get(ctx, key, func(ctx context.Context) (source.Attributes, error) {
			fetches[key]++
			return source.Attributes{}, nil
		})
		require.NoError(t, err)
	}
	get("b/1")
	get("b/2")
	get("b/1")
	get("b/3")
	// "b/2" was least recently used, so it got evicted.
	get("b/1")
	get("b/2")
	require.Equal(t, map[string]int{"b/1": 1, "b/2": 2, "b/3": 1}, fetches)
}

func TestMetadataCacheSingleFetch(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	cache := source.NewMetadataCache(clock, 4, 100, 5*time.Minute, newLRUSet)

	// Concurrent misses for the same key should cause a single
	// fetch. The fetch is blocked until all callers have started.
	const callers = 10
	var started, done sync.WaitGroup
	started.Add(callers)
	release := make(chan struct{})
	var fetchesLock sync.Mutex
	fetches := 0
	for i := 0; i < callers; i++ {
		done.Add(1)
		go func() {
			defer done.Done()
			started.Done()
			attributes, err := cache.Get(ctx, "bucket/key", func(ctx context.Context) (source.Attributes, error) {
				fetchesLock.Lock()
				fetches++
				fetchesLock.Unlock()
				<-release
				return source.Attributes{Length: 123}, nil
			})
			require.NoError(t, err)
			require.Equal(t, int64(123), attributes.Length)
		}()
	}
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()
	require.Equal(t, 1, fetches)
}

func TestMetadataCacheInvalidate(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()
	cache := source.NewMetadataCache(clock, 4, 100, 5*time.Minute, newLRUSet)

	t.Run("Stored", func(t *testing.T) {
		_, err := cache.Get(ctx, "bucket/a", func(ctx context.Context) (source.Attributes, error) {
			return source.Attributes{Length: 1}, nil
		})
		require.NoError(t, err)

		cache.Invalidate("bucket/a")
		attributes, err := cache.Get(ctx, "bucket/a", func(ctx context.Context) (source.Attributes, error) {
			return source.Attributes{Length: 2}, nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(2), attributes.Length)
	})

	t.Run("InFlight", func(t *testing.T) {
		// Results of fetches that started before an
		// invalidation should not be stored.
		attributes, err := cache.Get(ctx, "bucket/b", func(ctx context.Context) (source.Attributes, error) {
			cache.Invalidate("bucket/b")
			return source.Attributes{Length: 1}, nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), attributes.Length)

		attributes, err = cache.Get(ctx, "bucket/b", func(ctx context.Context) (source.Attributes, error) {
			return source.Attributes{Length: 2}, nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(2), attributes.Length)
	})

	t.Run("Error", func(t *testing.T) {
		_, err := cache.Get(ctx, "bucket/c", func(ctx context.Context) (source.Attributes, error) {
			return source.Attributes{}, errors.New("connection reset by peer")
		})
		require.Error(t, err)
	})
}
