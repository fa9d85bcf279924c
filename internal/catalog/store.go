package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"indigo-pricing/internal/catalog/migrations"
)

// StoreConfig holds PostgreSQL connection settings.
type StoreConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store loads the paper catalog and pricing configuration from PostgreSQL.
// Everything it returns is plain immutable data; the store itself is only
// needed at startup and for migrations.
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStore(ctx context.Context, cfg StoreConfig, logger *zap.Logger) (*Store, error) {
	const operation = "catalog.NewStore"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)

	var db *sqlx.DB

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err := backoff.RetryNotify(
		func() error {
			var err error
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Store{db: db, logger: logger}, nil
}

// NewStoreWithDB wraps an existing connection, used by tests.
func NewStoreWithDB(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: sqlx.NewDb(db, "postgres"), logger: logger}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for migration tooling.
func (s *Store) DB() *sql.DB {
	return s.db.DB
}

// Migrate brings the catalog schema up to date.
func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Up(ctx, s.db.DB, s.logger)
}

// LoadCatalog reads the full paper stock table.
func (s *Store) LoadCatalog(ctx context.Context) (Catalog, error) {
	const operation = "catalog.Store.LoadCatalog"

	var stocks []PaperStock
	query := `SELECT code, display_name, brand, type, finish, sheet_size, weight,
	                 cost_per_sheet, max_width, charge_rate
	          FROM paper_stocks
	          ORDER BY code`
	if err := s.db.SelectContext(ctx, &stocks, query); err != nil {
		return Catalog{}, fmt.Errorf("%s: select paper stocks: %w", operation, err)
	}

	s.logger.Info("Loaded paper catalog", zap.Int("stocks", len(stocks)))
	return NewCatalog(stocks), nil
}

// ConfigSection reads one named pricing configuration section as raw JSON.
func (s *Store) ConfigSection(ctx context.Context, name string) (json.RawMessage, error) {
	const operation = "catalog.Store.ConfigSection"

	var data []byte
	err := s.db.GetContext(ctx, &data, `SELECT data FROM pricing_configs WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: section %q not found", operation, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: select section %q: %w", operation, name, err)
	}
	return data, nil
}

// LoadPricingConfig assembles and validates the full pricing configuration
// from its stored sections.
func (s *Store) LoadPricingConfig(ctx context.Context) (PricingConfig, error) {
	const operation = "catalog.Store.LoadPricingConfig"

	cfg := PricingConfig{}
	sections := []struct {
		name string
		dst  any
	}{
		{"formula", &cfg.Formula},
		{"product_constraints", &cfg.Constraints},
		{"finishing_costs", &cfg.Finishing},
		{"rush_multipliers", &cfg.RushTiers},
		{"large_format_volume_discounts", &cfg.VolumeDiscounts},
		{"poster_presets", &cfg.PosterPresets},
		{"product_formulas", &cfg.ProductFormulas},
	}

	for _, section := range sections {
		raw, err := s.ConfigSection(ctx, section.name)
		if err != nil {
			return PricingConfig{}, err
		}
		if err := json.Unmarshal(raw, section.dst); err != nil {
			return PricingConfig{}, fmt.Errorf("%s: decode section %q: %w", operation, section.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return PricingConfig{}, fmt.Errorf("%s: invalid pricing config: %w", operation, err)
	}

	s.logger.Info("Loaded pricing configuration",
		zap.Int("products", len(cfg.Constraints)),
		zap.Int("rush_tiers", len(cfg.RushTiers)))
	return cfg, nil
}
