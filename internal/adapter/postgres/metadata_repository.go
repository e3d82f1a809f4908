package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"chainledger/internal/core/domain"
)

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// MetadataRepository keeps resolved metadata documents in the
// campaign_metadata table. Documents are content addressed, so a row is
// never updated once written. It implements port.MetadataCache and is used
// as the durable tier behind the in-process and Redis caches.
type MetadataRepository struct {
	db     DB
	logger *slog.Logger
}

// NewMetadataRepository returns a new repository instance.
func NewMetadataRepository(db DB, logger *slog.Logger) *MetadataRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetadataRepository{db: db, logger: logger.With(slog.String("component", "metadata-repository"))}
}

// Get loads the document stored for cid. Lookup errors are logged and
// reported as a miss.
func (r *MetadataRepository) Get(ctx context.Context, cid string) (*domain.CampaignMetadata, bool) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT document FROM campaign_metadata WHERE cid = $1`, cid).Scan(&raw)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("metadata lookup failed", slog.String("cid", cid), slog.Any("error", err))
		}
		return nil, false
	}
	var meta domain.CampaignMetadata
	if err = json.Unmarshal(raw, &meta); err != nil {
		r.logger.Warn("stored metadata malformed", slog.String("cid", cid), slog.Any("error", err))
		return nil, false
	}
	return &meta, true
}

// Set stores meta under cid. An existing row wins.
func (r *MetadataRepository) Set(ctx context.Context, cid string, meta *domain.CampaignMetadata) {
	if meta == nil {
		return
	}
	doc, err := json.Marshal(meta)
	if err != nil {
		r.logger.Warn("encode metadata", slog.String("cid", cid), slog.Any("error", err))
		return
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO campaign_metadata (cid, document, created_at)
        VALUES ($1, $2, now())
        ON CONFLICT (cid) DO NOTHING`, cid, doc)
	if err != nil {
		r.logger.Warn("metadata store failed", slog.String("cid", cid), slog.Any("error", err))
	}
}
