package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
	"chainledger/internal/metrics"
)

const (
	defaultConcurrency = 8
	defaultMaxLimit    = 100
)

// Options tunes a CampaignUseCase. Zero values select defaults.
type Options struct {
	// Concurrency bounds the number of metadata resolutions in flight for
	// one page.
	Concurrency int
	// MaxLimit caps the page size a caller may request.
	MaxLimit int
	// Metrics may be nil.
	Metrics *metrics.Registry
	// Cache receives freshly published documents. May be nil.
	Cache port.MetadataCache
	// Now is the clock used for deadline checks.
	Now func() time.Time
}

// CampaignUseCase aggregates ledger records and their IPFS metadata into
// normalized campaigns. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	ledger    port.LedgerReader
	resolver  port.MetadataResolver
	publisher port.MetadataPublisher
	cache     port.MetadataCache
	logger    *slog.Logger
	metrics   *metrics.Registry

	concurrency int
	maxLimit    int
	now         func() time.Time
}

// NewCampaignUseCase wires the aggregator. publisher may be nil, in which
// case PublishMetadata reports port.ErrPublishingDisabled.
func NewCampaignUseCase(ledger port.LedgerReader, resolver port.MetadataResolver, publisher port.MetadataPublisher, logger *slog.Logger, opts Options) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	u := &CampaignUseCase{
		ledger:      ledger,
		resolver:    resolver,
		publisher:   publisher,
		cache:       opts.Cache,
		logger:      logger.With(slog.String("component", "campaigns")),
		metrics:     opts.Metrics,
		concurrency: opts.Concurrency,
		maxLimit:    opts.MaxLimit,
		now:         opts.Now,
	}
	if u.concurrency <= 0 {
		u.concurrency = defaultConcurrency
	}
	if u.maxLimit <= 0 {
		u.maxLimit = defaultMaxLimit
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

// ListCampaigns returns up to params.Limit campaigns, skipping the
// params.Offset most recent ones. The count query is the only failure that
// reaches the caller.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, params port.ListParams) ([]domain.NormalizedCampaign, error) {
	if params.Limit <= 0 {
		return nil, port.ErrInvalidLimit
	}
	if params.Offset < 0 {
		return nil, port.ErrInvalidOffset
	}
	limit := min(params.Limit, u.maxLimit)

	total, err := u.ledger.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("read campaign count: %w", err)
	}
	ids := Window(total, uint64(limit), uint64(params.Offset))
	if len(ids) == 0 {
		return []domain.NormalizedCampaign{}, nil
	}

	page := u.fetchWindow(ctx, ids)
	if params.Order == port.OrderDesc {
		slices.Reverse(page)
	}
	return page, nil
}

// Window returns the ledger indexes of the page that skips the offset most
// recent campaigns and holds at most limit entries, in ascending order.
func Window(total, limit, offset uint64) []uint64 {
	if total == 0 || offset >= total {
		return nil
	}
	end := total - offset
	var start uint64
	if offset+limit < total {
		start = total - (offset + limit)
	}
	ids := make([]uint64, 0, end-start)
	for i := start; i < end; i++ {
		ids = append(ids, i)
	}
	return ids
}

// fetchWindow batch-reads ids and normalizes every record that came back.
// Records are resolved concurrently; the result keeps the order of ids.
func (u *CampaignUseCase) fetchWindow(ctx context.Context, ids []uint64) []domain.NormalizedCampaign {
	records, err := u.ledger.BatchRead(ctx, ids)
	if err != nil {
		u.logger.Error("batch read failed", slog.Any("ids", ids), slog.Any("error", err))
		u.metrics.Dropped(len(ids))
		return []domain.NormalizedCampaign{}
	}

	now := u.now()
	out := make([]*domain.NormalizedCampaign, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, rec := range records {
		if rec == nil {
			continue
		}
		g.Go(func() error {
			meta := u.resolver.Resolve(gctx, rec.CID)
			n := domain.Normalize(*rec, meta, now)
			out[i] = &n
			return nil
		})
	}
	_ = g.Wait()

	page := make([]domain.NormalizedCampaign, 0, len(out))
	for _, n := range out {
		if n != nil {
			page = append(page, *n)
		}
	}
	if dropped := len(ids) - len(page); dropped > 0 {
		u.logger.Debug("dropped unreadable campaigns", slog.Int("dropped", dropped))
		u.metrics.Dropped(dropped)
	}
	return page
}

// GetCampaign reads one campaign directly. Every failure is logged and
// reported as nil.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uint64) *domain.NormalizedCampaign {
	rec, err := u.ledger.ReadRecord(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrCampaignNotFound) {
			u.logger.Warn("campaign not found", slog.Uint64("id", id))
		} else {
			u.logger.Error("read campaign failed", slog.Uint64("id", id), slog.Any("error", err))
		}
		return nil
	}
	if rec == nil {
		u.logger.Warn("campaign not found", slog.Uint64("id", id))
		return nil
	}
	meta := u.resolver.Resolve(ctx, rec.CID)
	n := domain.Normalize(*rec, meta, u.now())
	return &n
}

// Stats walks every campaign page by page and folds them into totals.
func (u *CampaignUseCase) Stats(ctx context.Context) (*domain.GlobalStats, error) {
	total, err := u.ledger.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("read campaign count: %w", err)
	}
	var stats domain.GlobalStats
	for offset := uint64(0); offset < total; offset += uint64(u.maxLimit) {
		ids := Window(total, uint64(u.maxLimit), offset)
		for _, c := range u.fetchWindow(ctx, ids) {
			stats.Add(c)
		}
	}
	stats.Finish()
	return &stats, nil
}

// PublishMetadata validates a metadata document, pins it and primes the
// cache with it so the campaign created from it resolves without a gateway
// round trip.
func (u *CampaignUseCase) PublishMetadata(ctx context.Context, meta domain.CampaignMetadata) (string, error) {
	if u.publisher == nil {
		return "", port.ErrPublishingDisabled
	}
	if err := validateMetadata(meta); err != nil {
		return "", err
	}
	cid, err := u.publisher.Publish(ctx, meta)
	if err != nil {
		return "", fmt.Errorf("publish metadata: %w", err)
	}
	if u.cache != nil {
		u.cache.Set(ctx, cid, &meta)
	}
	u.metrics.Published()
	u.logger.Info("metadata published", slog.String("cid", cid))
	return cid, nil
}

func validateMetadata(meta domain.CampaignMetadata) error {
	if meta.Title == nil || strings.TrimSpace(*meta.Title) == "" {
		return fmt.Errorf("%w: title is required", port.ErrInvalidMetadata)
	}
	if meta.Category != nil && !domain.IsCategory(*meta.Category) {
		return fmt.Errorf("%w: unknown category %q", port.ErrInvalidMetadata, *meta.Category)
	}
	if meta.SupporterThreshold != nil && *meta.SupporterThreshold < 0 {
		return fmt.Errorf("%w: supporter threshold must not be negative", port.ErrInvalidMetadata)
	}
	return nil
}
