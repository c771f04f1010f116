package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/reclaim/server/internal/config"
	"codeberg.org/reclaim/server/internal/logger"
	"codeberg.org/reclaim/server/internal/ratelimit"
	"codeberg.org/reclaim/server/internal/validation"
	"codeberg.org/reclaim/server/reclaim/categories"
	"codeberg.org/reclaim/server/reclaim/claims"
	"codeberg.org/reclaim/server/reclaim/items"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := validation.Register(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	rateLimiter, err := ratelimit.New(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	logger.Info("rate limiter initialized",
		"limit", rateLimiter.Rate.Limit,
		"period", rateLimiter.Rate.Period,
		"shared", cfg.RedisURL != "",
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		db:           db,
		config:       cfg,
		userRepo:     users.NewRepository(db),
		itemRepo:     items.NewRepository(db),
		categoryRepo: categories.NewRepository(db),
		claimRepo:    claims.NewRepository(db),
		limiter:      rateLimiter,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
