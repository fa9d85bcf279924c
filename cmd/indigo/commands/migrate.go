package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"indigo-pricing/internal/catalog"
	"indigo-pricing/internal/catalog/migrations"
	"indigo-pricing/internal/config"
	"indigo-pricing/pkg/logger"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply catalog database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back the last migration instead of applying")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.CatalogSource != config.SourcePostgres {
		return fmt.Errorf("migrations require CATALOG_SOURCE=postgres")
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	store, err := catalog.NewStore(ctx, catalog.StoreConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
	}, zapLogger)
	if err != nil {
		return err
	}
	defer store.Close()

	if migrateDown {
		return migrations.Down(ctx, store.DB(), zapLogger)
	}
	return store.Migrate(ctx)
}
