package main

import (
	"context"
	"log"
	"time"

	"ecommerce-backend/infrastructure/config"
	"ecommerce-backend/infrastructure/persistence/postgres"

	"go.uber.org/zap"
)

// migrate applies the versioned schema migrations and exits. Running it is
// an explicit deployment step; the API binaries never touch the schema.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	logger.Info("Migrations up to date")
}
