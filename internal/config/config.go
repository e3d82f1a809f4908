package config

import (
	"github.com/caarlos0/env/v11"

	"chainledger/internal/config/configs"
)

// Config aggregates all configuration sections. Fields are populated from
// environment variables by caarlos0/env; each nested struct is parsed under
// its envPrefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Ledger     configs.Ledger     `envPrefix:"LEDGER_"`
	IPFS       configs.IPFS       `envPrefix:"IPFS_"`
	Pinata     configs.Pinata     `envPrefix:"PINATA_"`
	Cache      configs.Cache      `envPrefix:"CACHE_"`
	Redis      configs.Redis      `envPrefix:"REDIS_"`
	Aggregator configs.Aggregator `envPrefix:"AGGREGATOR_"`
}

// Load reads configuration from environment variables into a Config. Fields
// without a variable keep their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
