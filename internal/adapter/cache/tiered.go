package cache

import (
	"context"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
)

// Tiered chains caches from fastest to slowest. Reads stop at the first hit
// and copy it into the faster tiers; writes go to every tier.
type Tiered struct {
	tiers []port.MetadataCache
}

// NewTiered returns a cache over tiers, skipping nil entries.
func NewTiered(tiers ...port.MetadataCache) *Tiered {
	t := &Tiered{}
	for _, c := range tiers {
		if c != nil {
			t.tiers = append(t.tiers, c)
		}
	}
	return t
}

func (t *Tiered) Get(ctx context.Context, cid string) (*domain.CampaignMetadata, bool) {
	for i, c := range t.tiers {
		meta, ok := c.Get(ctx, cid)
		if !ok {
			continue
		}
		for _, upper := range t.tiers[:i] {
			upper.Set(ctx, cid, meta)
		}
		return meta, true
	}
	return nil, false
}

func (t *Tiered) Set(ctx context.Context, cid string, meta *domain.CampaignMetadata) {
	for _, c := range t.tiers {
		c.Set(ctx, cid, meta)
	}
}
