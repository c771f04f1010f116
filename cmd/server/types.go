package main

import (
	"codeberg.org/reclaim/server/internal/config"
	"codeberg.org/reclaim/server/reclaim/categories"
	"codeberg.org/reclaim/server/reclaim/claims"
	"codeberg.org/reclaim/server/reclaim/items"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
)

// holds all dependencies and state for the API server
type Server struct {
	db           *pgxpool.Pool
	config       *config.Config
	userRepo     *users.Repository
	itemRepo     *items.Repository
	categoryRepo *categories.Repository
	claimRepo    *claims.Repository
	limiter      *limiter.Limiter
	router       *gin.Engine
}
