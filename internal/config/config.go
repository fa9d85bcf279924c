package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Catalog source values.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	CatalogSource   string        `env:"CATALOG_SOURCE" envDefault:"static"`
	DBHost          string        `env:"DB_HOST"`
	DBPort          int           `env:"DB_PORT" envDefault:"5432"`
	DBUser          string        `env:"DB_USER"`
	DBPassword      string        `env:"DB_PASSWORD"`
	DBName          string        `env:"DB_NAME"`
	DBMaxOpenConns  int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns  int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLife   time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RateLimit       int           `env:"RATE_LIMIT_REQUESTS" envDefault:"0"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.CatalogSource {
	case SourceStatic:
	case SourcePostgres:
		if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("postgres catalog source requires DB_HOST, DB_USER and DB_NAME")
		}
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	if cfg.RateLimit > 0 && cfg.RedisAddr == "" {
		return nil, fmt.Errorf("rate limiting requires REDIS_ADDR")
	}

	return &cfg, nil
}
