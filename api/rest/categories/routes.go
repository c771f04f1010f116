package categories

import (
	"context"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/reclaim/categories"
	"github.com/gin-gonic/gin"
)

type CategoryStore interface {
	List(ctx context.Context) ([]categories.Category, error)
	Create(ctx context.Context, req categories.CreateCategoryRequest) (*categories.Category, error)
	ListTags(ctx context.Context) ([]categories.Tag, error)
}

func RegisterRoutes(router *gin.RouterGroup, store CategoryStore) {
	router.GET("/categories", ListCategoriesHandler(store))
	router.POST("/categories", auth.AuthMiddleware(), CreateCategoryHandler(store))
	router.GET("/tags", ListTagsHandler(store))
}
