package port

import (
	"context"

	"chainledger/internal/core/domain"
)

// ContentFetcher retrieves raw documents from a content-addressed store.
type ContentFetcher interface {
	// Fetch returns the document body for cid from the first mirror that
	// answers successfully, or an error when none does.
	Fetch(ctx context.Context, cid string) ([]byte, error)
}

// MetadataResolver turns a content identifier into a parsed metadata
// document. It never fails; nil means no metadata is available.
type MetadataResolver interface {
	Resolve(ctx context.Context, cid string) *domain.CampaignMetadata
}

// MetadataCache stores resolved metadata documents by content identifier.
// Implementations must be safe for concurrent use. Errors are absorbed:
// a failed lookup is a miss.
type MetadataCache interface {
	Get(ctx context.Context, cid string) (*domain.CampaignMetadata, bool)
	Set(ctx context.Context, cid string, meta *domain.CampaignMetadata)
}

// MetadataPublisher pins metadata documents to the content store.
type MetadataPublisher interface {
	Publish(ctx context.Context, meta domain.CampaignMetadata) (string, error)
}
