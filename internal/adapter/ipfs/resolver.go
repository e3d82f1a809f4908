package ipfs

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
	"chainledger/internal/metrics"
)

// Resolver resolves content identifiers into campaign metadata, consulting
// its cache before the content store. It implements port.MetadataResolver.
type Resolver struct {
	fetcher port.ContentFetcher
	cache   port.MetadataCache
	logger  *slog.Logger
	metrics *metrics.Registry
	group   singleflight.Group
}

// NewResolver returns a resolver owning cache. metrics may be nil.
func NewResolver(fetcher port.ContentFetcher, cache port.MetadataCache, logger *slog.Logger, m *metrics.Registry) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger.With(slog.String("component", "metadata-resolver")),
		metrics: m,
	}
}

// Resolve returns the metadata document for cid, or nil when cid is empty or
// no mirror could serve it. It never fails.
func (r *Resolver) Resolve(ctx context.Context, cid string) *domain.CampaignMetadata {
	if strings.TrimSpace(cid) == "" {
		return nil
	}
	if meta, ok := r.cache.Get(ctx, cid); ok {
		r.metrics.CacheHit()
		return meta
	}
	r.metrics.CacheMiss()

	// Concurrent misses for one identifier share a single fetch. The
	// fetch runs detached from the first caller's cancellation so the
	// others are not failed by it; the gateway applies its own deadlines.
	ch := r.group.DoChan(cid, func() (interface{}, error) {
		return r.fetch(context.WithoutCancel(ctx), cid), nil
	})
	select {
	case res := <-ch:
		meta, _ := res.Val.(*domain.CampaignMetadata)
		return meta
	case <-ctx.Done():
		r.logger.Warn("metadata resolution abandoned", slog.String("cid", cid), slog.Any("error", ctx.Err()))
		return nil
	}
}

func (r *Resolver) fetch(ctx context.Context, cid string) *domain.CampaignMetadata {
	body, err := r.fetcher.Fetch(ctx, cid)
	if err != nil {
		r.logger.Warn("metadata unavailable", slog.String("cid", cid), slog.Any("error", err))
		r.metrics.Unresolved()
		return nil
	}
	meta, invalid, err := domain.DecodeMetadata(body)
	if err != nil {
		r.logger.Warn("metadata malformed", slog.String("cid", cid), slog.Any("error", err))
		r.metrics.Unresolved()
		return nil
	}
	if len(invalid) > 0 {
		r.logger.Debug("metadata fields ignored", slog.String("cid", cid), slog.Any("fields", invalid))
	}
	r.cache.Set(ctx, cid, meta)
	return meta
}
