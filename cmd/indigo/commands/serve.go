package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"indigo-pricing/internal/catalog"
	"indigo-pricing/internal/config"
	"indigo-pricing/internal/imposition"
	"indigo-pricing/internal/pricing"
	"indigo-pricing/internal/server"
	"indigo-pricing/pkg/logger"
	"indigo-pricing/pkg/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP quote API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cat, pricingCfg, err := loadCatalog(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to load catalog", zap.Error(err))
	}

	engine, err := pricing.NewEngine(cat, pricingCfg, imposition.Calculator{})
	if err != nil {
		zapLogger.Fatal("Failed to build pricing engine", zap.Error(err))
	}

	var limiter *server.RateLimiter
	if cfg.RateLimit > 0 {
		redisClient := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer redisClient.Close()
		limiter = server.NewRateLimiter(redisClient, zapLogger, cfg.RateLimit, cfg.RateLimitWindow)
		zapLogger.Info("Rate limiting enabled",
			zap.Int("requests", cfg.RateLimit),
			zap.Duration("window", cfg.RateLimitWindow))
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(engine, zapLogger, limiter).Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", cfg.ListenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	zapLogger.Info("Server shutdown gracefully")
	return nil
}

// loadCatalog resolves the paper table and pricing configuration from the
// configured source. Everything returned is immutable for the process
// lifetime.
func loadCatalog(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (catalog.Catalog, catalog.PricingConfig, error) {
	if cfg.CatalogSource == config.SourceStatic {
		zapLogger.Info("Using built-in catalog and pricing configuration")
		return catalog.NewCatalog(catalog.DefaultPaperStocks()), catalog.DefaultPricingConfig(), nil
	}

	store, err := catalog.NewStore(ctx, catalog.StoreConfig{
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	}, zapLogger)
	if err != nil {
		return catalog.Catalog{}, catalog.PricingConfig{}, err
	}
	defer store.Close()

	cat, err := store.LoadCatalog(ctx)
	if err != nil {
		return catalog.Catalog{}, catalog.PricingConfig{}, err
	}

	pricingCfg, err := store.LoadPricingConfig(ctx)
	if err != nil {
		return catalog.Catalog{}, catalog.PricingConfig{}, err
	}

	return cat, pricingCfg, nil
}
