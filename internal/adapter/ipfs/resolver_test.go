package ipfs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chainledger/internal/adapter/cache"
	"chainledger/internal/core/port/mocks"
)

// TestResolverCachesDocuments ensures the second lookup of an identifier never touches the network.
func TestResolverCachesDocuments(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, "bafydoc").Return([]byte(`{"title":"B","verified":true}`), nil).Once()

	r := NewResolver(fetcher, cache.NewMemory(16, time.Hour), quietLogger(), nil)

	first := r.Resolve(context.Background(), "bafydoc")
	require.NotNil(t, first)
	assert.Equal(t, "B", *first.Title)
	require.NotNil(t, first.Verified)
	assert.True(t, *first.Verified)

	second := r.Resolve(context.Background(), "bafydoc")
	assert.Same(t, first, second)
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestResolverEmptyIdentifier(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	r := NewResolver(fetcher, cache.NewMemory(16, time.Hour), quietLogger(), nil)

	assert.Nil(t, r.Resolve(context.Background(), ""))
	assert.Nil(t, r.Resolve(context.Background(), "   "))
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestResolverFailureIsNotCached(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, "bafygone").Return(nil, errors.New("all mirrors failed")).Twice()

	mem := cache.NewMemory(16, time.Hour)
	r := NewResolver(fetcher, mem, quietLogger(), nil)

	assert.Nil(t, r.Resolve(context.Background(), "bafygone"))
	assert.Nil(t, r.Resolve(context.Background(), "bafygone"))
	assert.Equal(t, 0, mem.Len())
}

func TestResolverMalformedDocument(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, "bafyodd").Return([]byte(`["title"]`), nil).Once()

	r := NewResolver(fetcher, cache.NewMemory(16, time.Hour), quietLogger(), nil)
	assert.Nil(t, r.Resolve(context.Background(), "bafyodd"))
}

// TestResolverKeepsPartiallyTypedDocument ensures a mistyped optional field neither drops the document nor defeats the cache.
func TestResolverKeepsPartiallyTypedDocument(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, "bafymixed").
		Return([]byte(`{"title":"B","supporterThreshold":"25","verified":"yes"}`), nil).Once()

	r := NewResolver(fetcher, cache.NewMemory(16, time.Hour), quietLogger(), nil)

	for i := 0; i < 3; i++ {
		meta := r.Resolve(context.Background(), "bafymixed")
		require.NotNil(t, meta)
		require.NotNil(t, meta.Title)
		assert.Equal(t, "B", *meta.Title)
		assert.Nil(t, meta.SupporterThreshold)
		assert.Nil(t, meta.Verified)
	}
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

// TestResolverKeysByOriginalIdentifier ensures the cache entry and the fetch use the identifier as given.
func TestResolverKeysByOriginalIdentifier(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, " bafypad").Return([]byte(`{"title":"padded"}`), nil).Once()

	mem := cache.NewMemory(16, time.Hour)
	r := NewResolver(fetcher, mem, quietLogger(), nil)
	require.NotNil(t, r.Resolve(context.Background(), " bafypad"))

	_, ok := mem.Get(context.Background(), " bafypad")
	assert.True(t, ok)
	_, ok = mem.Get(context.Background(), "bafypad")
	assert.False(t, ok)
}

// TestResolverCollapsesConcurrentMisses ensures racing lookups share one fetch.
func TestResolverCollapsesConcurrentMisses(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	release := make(chan struct{})
	fetcher.EXPECT().Fetch(mock.Anything, "bafyslow").
		RunAndReturn(func(ctx context.Context, cid string) ([]byte, error) {
			<-release
			return []byte(`{"title":"slow"}`), nil
		}).Once()

	r := NewResolver(fetcher, cache.NewMemory(16, time.Hour), quietLogger(), nil)

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if meta := r.Resolve(context.Background(), "bafyslow"); meta != nil && meta.Title != nil {
				results[i] = *meta.Title
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "slow", got)
	}
}

func TestResolverHonoursCallerCancellation(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	release := make(chan struct{})
	done := make(chan struct{})
	fetcher.EXPECT().Fetch(mock.Anything, "bafyhung").
		RunAndReturn(func(ctx context.Context, cid string) ([]byte, error) {
			defer close(done)
			<-release
			return nil, errors.New("gave up")
		}).Once()

	r := NewResolver(fetcher, cache.NewMemory(16, time.Hour), quietLogger(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Nil(t, r.Resolve(ctx, "bafyhung"))

	close(release)
	<-done
}
