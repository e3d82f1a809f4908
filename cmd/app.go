package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"chainledger/internal/adapter/cache"
	"chainledger/internal/adapter/ethereum"
	"chainledger/internal/adapter/ipfs"
	"chainledger/internal/adapter/postgres"
	"chainledger/internal/adapter/usecase"
	"chainledger/internal/config"
	"chainledger/internal/core/port"
	"chainledger/internal/db"
	"chainledger/internal/metrics"
)

// app holds the wired service graph shared by every command.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Registry
	svc     *usecase.CampaignUseCase
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stderr).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}

// newApp loads configuration and connects every adapter. Optional tiers
// (Redis, Postgres) and the publisher are only wired when configured.
func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, metrics: metrics.NewRegistry()}

	mc, err := a.metadataCache(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	gateway := ipfs.NewGatewayClient(cfg.IPFS.Gateways, logger,
		ipfs.WithMirrorTimeout(cfg.IPFS.MirrorTimeout),
		ipfs.WithMaxBytes(cfg.IPFS.MaxDocumentBytes),
		ipfs.WithMetrics(a.metrics),
	)
	resolver := ipfs.NewResolver(gateway, mc, logger, a.metrics)

	contract, err := cfg.Ledger.Contract()
	if err != nil {
		a.Close()
		return nil, err
	}
	multicall, err := cfg.Ledger.Multicall()
	if err != nil {
		a.Close()
		return nil, err
	}
	ledger, closeLedger, err := ethereum.Dial(ctx, cfg.Ledger.RPCURL, contract, multicall, cfg.Ledger.CallTimeout, logger, a.metrics)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, closeLedger)

	var publisher port.MetadataPublisher
	if cfg.Pinata.Enabled() {
		publisher = ipfs.NewPinataClient(cfg.Pinata.APIURL, cfg.Pinata.JWT, cfg.Pinata.Timeout, logger)
	}

	a.svc = usecase.NewCampaignUseCase(ledger, resolver, publisher, logger, usecase.Options{
		Concurrency: cfg.Aggregator.Concurrency,
		MaxLimit:    cfg.Aggregator.MaxLimit,
		Metrics:     a.metrics,
		Cache:       mc,
	})
	return a, nil
}

// metadataCache stacks the in-process LRU over Redis and Postgres when they
// are enabled.
func (a *app) metadataCache(ctx context.Context) (port.MetadataCache, error) {
	tiers := []port.MetadataCache{cache.NewMemory(a.cfg.Cache.Size, a.cfg.Cache.TTL)}

	if a.cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Address,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		tiers = append(tiers, cache.NewRedis(rdb, a.cfg.Redis.KeyPrefix, a.cfg.Cache.RedisTTL, a.logger))
		a.logger.Info("redis metadata cache enabled", slog.String("address", a.cfg.Redis.Address))
	}

	if a.cfg.Psql.Enabled {
		if a.cfg.Psql.RunMigrations {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		tiers = append(tiers, postgres.NewMetadataRepository(pool, a.logger))
		a.logger.Info("postgres metadata store enabled")
	}

	if len(tiers) == 1 {
		return tiers[0], nil
	}
	return cache.NewTiered(tiers...), nil
}
