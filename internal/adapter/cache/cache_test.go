package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port/mocks"
)

func title(s string) *domain.CampaignMetadata { return &domain.CampaignMetadata{Title: &s} }

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2, time.Hour)

	m.Set(ctx, "a", title("A"))
	m.Set(ctx, "b", title("B"))
	_, ok := m.Get(ctx, "a")
	require.True(t, ok)

	m.Set(ctx, "c", title("C"))

	_, ok = m.Get(ctx, "b")
	assert.False(t, ok, "b was least recently used")
	got, ok := m.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "A", *got.Title)
	assert.Equal(t, 2, m.Len())
}

func TestMemoryExpires(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, 20*time.Millisecond)

	m.Set(ctx, "a", title("A"))
	_, ok := m.Get(ctx, "a")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := m.Get(ctx, "a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryIgnoresNil(t *testing.T) {
	m := NewMemory(0, 0)
	m.Set(context.Background(), "a", nil)
	assert.Equal(t, 0, m.Len())
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewRedis(rdb, "chainledger:", time.Hour, quietLogger())

	_, ok := c.Get(ctx, "bafy1")
	assert.False(t, ok)

	c.Set(ctx, "bafy1", title("Clean water"))
	assert.True(t, mr.Exists("chainledger:metadata:bafy1"))
	assert.Equal(t, time.Hour, mr.TTL("chainledger:metadata:bafy1"))

	got, ok := c.Get(ctx, "bafy1")
	require.True(t, ok)
	assert.Equal(t, "Clean water", *got.Title)

	mr.FastForward(2 * time.Hour)
	_, ok = c.Get(ctx, "bafy1")
	assert.False(t, ok)
}

func TestRedisMalformedValueIsMiss(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, mr.Set("metadata:bad", "{not json"))

	c := NewRedis(rdb, "", 0, quietLogger())
	_, ok := c.Get(ctx, "bad")
	assert.False(t, ok)
}

func TestRedisUnavailableIsMiss(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	c := NewRedis(rdb, "", 0, quietLogger())
	c.Set(ctx, "x", title("X"))
	_, ok := c.Get(ctx, "x")
	assert.False(t, ok)
}

// TestTieredBackfillsUpperTiers ensures a lower-tier hit is copied into the faster tiers.
func TestTieredBackfillsUpperTiers(t *testing.T) {
	ctx := context.Background()
	upper := NewMemory(10, time.Hour)
	lower := mocks.NewMockMetadataCache(t)

	doc := title("from postgres")
	lower.EXPECT().Get(ctx, "cid").Return(doc, true).Once()

	c := NewTiered(upper, nil, lower)

	got, ok := c.Get(ctx, "cid")
	require.True(t, ok)
	assert.Same(t, doc, got)

	got, ok = c.Get(ctx, "cid")
	require.True(t, ok)
	assert.Same(t, doc, got)
}

func TestTieredSetWritesEveryTier(t *testing.T) {
	ctx := context.Background()
	upper := NewMemory(10, time.Hour)
	lower := mocks.NewMockMetadataCache(t)

	doc := title("x")
	lower.EXPECT().Set(ctx, "cid", doc).Return().Once()
	lower.EXPECT().Get(ctx, "other").Return(nil, false).Once()

	c := NewTiered(upper, lower)
	c.Set(ctx, "cid", doc)

	_, ok := upper.Get(ctx, "cid")
	assert.True(t, ok)

	_, ok = c.Get(ctx, "other")
	assert.False(t, ok)
}
