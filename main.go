package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kendall-kelly/detailing-seed/config"
	"github.com/kendall-kelly/detailing-seed/logger"
	"github.com/kendall-kelly/detailing-seed/models"
	"github.com/kendall-kelly/detailing-seed/seed"
	"github.com/kendall-kelly/detailing-seed/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	if err := run(context.Background(), cfg, zlog); err != nil {
		zlog.Error("seed failed", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
	_ = zlog.Sync()
}

// run seeds the configured database with the default catalog. The database
// connection is opened here and released before returning, on every path.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if err := cfg.CheckSeedAllowed(); err != nil {
		return err
	}

	hasher, err := services.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()
	log.Info("database connection established", zap.String("type", cfg.DatabaseType))

	if cfg.AutoMigrate {
		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("database migration completed")
	}

	loader := seed.NewLoader(db, hasher, log)
	if _, err := loader.Run(ctx, seed.DefaultCatalog()); err != nil {
		return err
	}

	counts, err := seed.CountRows(ctx, db)
	if err != nil {
		return err
	}
	log.Info("database seeded", zap.Object("counts", counts))
	return nil
}
