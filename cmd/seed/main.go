package main

import (
	"context"
	"os"

	"codeberg.org/reclaim/server/internal/config"
	"codeberg.org/reclaim/server/internal/logger"
	"codeberg.org/reclaim/server/reclaim/categories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seeds reference data; safe to run repeatedly
func main() {
	flags := config.ParseSeedFlags(os.Args[1:])

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.FatalErr(err, "failed to ping database")
	}

	logger.Info("connected to database")

	if !flags.Categories {
		logger.Info("nothing to seed")
		return
	}

	added, err := categories.NewRepository(db).EnsureDefaults(ctx)
	if err != nil {
		logger.FatalErr(err, "failed to seed categories", "added", added)
	}

	logger.Info("categories seeded", "added", added, "defaults", len(categories.Defaults))
}
