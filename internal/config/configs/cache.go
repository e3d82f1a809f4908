package configs

import "time"

// Cache sizes the in-process metadata cache and sets the Redis expiry.
type Cache struct {
	Size     int           `env:"SIZE" envDefault:"1024"`
	TTL      time.Duration `env:"TTL" envDefault:"1h"`
	RedisTTL time.Duration `env:"REDIS_TTL" envDefault:"24h"`
}

// Redis configures the shared metadata cache. It is used only when Address
// is set.
type Redis struct {
	Address   string `env:"ADDRESS"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"chainledger:"`
}

// Enabled reports whether a Redis address was supplied.
func (c Redis) Enabled() bool {
	return c.Address != ""
}

// Aggregator bounds campaign listing.
type Aggregator struct {
	// Concurrency limits in-flight metadata resolutions per page.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
	// MaxLimit caps the page size a caller may request.
	MaxLimit int `env:"MAX_LIMIT" envDefault:"100"`
}
