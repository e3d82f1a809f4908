package port

import (
	"context"
	"errors"

	"chainledger/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// LedgerReader is the read-only view of the campaign contract. It is an
// outbound port; implementations talk to a chain node.
type LedgerReader interface {
	// Count returns how many campaigns were ever created. Campaign IDs are
	// 0..Count-1 in creation order.
	Count(ctx context.Context) (uint64, error)
	// ReadRecord reads a single campaign. Unknown IDs yield
	// ErrCampaignNotFound.
	ReadRecord(ctx context.Context, id uint64) (*domain.CampaignRecord, error)
	// BatchRead reads many campaigns in one round trip. The result is
	// aligned with ids; a slot is nil when that read failed.
	BatchRead(ctx context.Context, ids []uint64) ([]*domain.CampaignRecord, error)
}
