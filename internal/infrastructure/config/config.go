package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SimulatedLatency is slept before login/signup/password-update
	// complete, modelling the original client's pending API call.
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY, default=250ms"`

	// CatalogSeed fixes the catalog PRNG. 0 means seed from the clock, so
	// each process start gets fresh numeric content with the same shape.
	CatalogSeed int64 `env:"CATALOG_SEED, default=0"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
