package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/reclaim/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	service     = "reclaim"
	version     = "1.0.0"
	pingTimeout = 2 * time.Second
)

// returns the server health status, degraded when the database is unreachable
func Handler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		resp := Response{Status: "healthy", Service: service, Version: version, Database: "ok"}

		if err := db.Ping(ctx); err != nil {
			logger.Warn("health check: database unreachable", "error", err)

			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
