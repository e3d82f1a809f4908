package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"chainledger/internal/core/domain"
)

// Redis shares resolved metadata between service instances. Values are the
// JSON documents themselves, keyed by content identifier.
type Redis struct {
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis wraps an existing client. A zero ttl stores keys without expiry.
func NewRedis(rdb goredis.UniversalClient, prefix string, ttl time.Duration, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "redis-cache")),
	}
}

func (r *Redis) key(cid string) string { return r.prefix + "metadata:" + cid }

func (r *Redis) Get(ctx context.Context, cid string) (*domain.CampaignMetadata, bool) {
	raw, err := r.rdb.Get(ctx, r.key(cid)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.logger.Warn("redis get failed", slog.String("cid", cid), slog.Any("error", err))
		}
		return nil, false
	}
	var meta domain.CampaignMetadata
	if err = json.Unmarshal(raw, &meta); err != nil {
		r.logger.Warn("redis value malformed", slog.String("cid", cid), slog.Any("error", err))
		return nil, false
	}
	return &meta, true
}

func (r *Redis) Set(ctx context.Context, cid string, meta *domain.CampaignMetadata) {
	if meta == nil {
		return
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		r.logger.Warn("redis encode failed", slog.String("cid", cid), slog.Any("error", err))
		return
	}
	if err = r.rdb.Set(ctx, r.key(cid), raw, r.ttl).Err(); err != nil {
		r.logger.Warn("redis set failed", slog.String("cid", cid), slog.Any("error", err))
	}
}
