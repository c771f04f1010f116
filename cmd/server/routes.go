package main

import (
	"codeberg.org/reclaim/server/api/rest/categories"
	"codeberg.org/reclaim/server/api/rest/claims"
	"codeberg.org/reclaim/server/api/rest/health"
	"codeberg.org/reclaim/server/api/rest/items"
	"codeberg.org/reclaim/server/api/rest/suggestions"
	"codeberg.org/reclaim/server/api/rest/users"
	"codeberg.org/reclaim/server/internal/logger"
	"codeberg.org/reclaim/server/internal/metrics"
	"codeberg.org/reclaim/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(logger.Middleware())
	router.Use(metrics.Middleware())
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	router.GET("/health", health.Handler(server.db))
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/api/v1")
	v1.Use(ratelimit.Middleware(server.limiter))

	{
		v1.GET("/ping", health.PingHandler)

		categories.RegisterRoutes(v1, server.categoryRepo)
		items.RegisterRoutes(v1, server.itemRepo)
		suggestions.RegisterRoutes(v1, server.itemRepo, server.config.Suggestions)
		claims.RegisterRoutes(v1, server.claimRepo, server.itemRepo)
		users.RegisterRoutes(v1, server.userRepo)
	}
}
