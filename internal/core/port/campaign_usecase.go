package port

import (
	"context"
	"errors"

	"chainledger/internal/core/domain"
)

var (
	ErrInvalidLimit       = errors.New("limit must be positive")
	ErrInvalidOffset      = errors.New("offset must not be negative")
	ErrInvalidMetadata    = errors.New("invalid campaign metadata")
	ErrPublishingDisabled = errors.New("metadata publishing is not configured")
)

// Order selects how a page of campaigns is sorted.
type Order string

const (
	// OrderAsc keeps ledger index order inside the requested window, so a
	// page holds the newest campaigns but lists them oldest first.
	OrderAsc Order = "asc"
	// OrderDesc lists every page strictly newest first.
	OrderDesc Order = "desc"
)

// ListParams selects a page of campaigns counted back from the newest one.
type ListParams struct {
	Limit  int
	Offset int
	Order  Order
}

// CampaignUseCase defines the read operations the presentation layer uses.
// This interface is the primary port into the application domain.
type CampaignUseCase interface {
	// ListCampaigns returns a page of normalized campaigns. Only a failure
	// to read the campaign count is returned as an error; unreadable records
	// are dropped and missing metadata falls back to on-chain values.
	ListCampaigns(ctx context.Context, params ListParams) ([]domain.NormalizedCampaign, error)

	// GetCampaign returns one normalized campaign or nil. It never fails:
	// any read error is logged and reported as not found.
	GetCampaign(ctx context.Context, id uint64) *domain.NormalizedCampaign

	// Stats folds every campaign into dashboard totals.
	Stats(ctx context.Context) (*domain.GlobalStats, error)

	// PublishMetadata validates and pins a metadata document, returning
	// its content identifier.
	PublishMetadata(ctx context.Context, meta domain.CampaignMetadata) (string, error)
}
