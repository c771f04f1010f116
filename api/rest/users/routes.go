package users

import (
	"context"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/gin-gonic/gin"
)

type UserStore interface {
	FindByID(ctx context.Context, userID string) (*users.User, error)
	UpdateProfile(ctx context.Context, userID string, req users.UpdateProfileRequest) (*users.User, error)
	FindProfile(ctx context.Context, userID string) (*users.Profile, error)
}

func RegisterRoutes(rg *gin.RouterGroup, store UserStore) {
	group := rg.Group("/users")

	group.GET("/me", auth.AuthMiddleware(), GetMe(store))
	group.PUT("/me", auth.AuthMiddleware(), UpdateMe(store))
	group.GET("/:id", GetProfile(store))
}
