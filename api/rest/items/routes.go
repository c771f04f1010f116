package items

import (
	"context"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
)

// item persistence used by the handlers
type ItemStore interface {
	Create(ctx context.Context, kind items.Kind, userID string, req items.CreateItemRequest) (*items.Item, error)
	Get(ctx context.Context, kind items.Kind, id string) (*items.Item, error)
	List(ctx context.Context, kind items.Kind, filter items.ListFilter) ([]items.Item, error)
	ListByUser(ctx context.Context, userID string) ([]items.Item, error)
	UpdateStatus(ctx context.Context, kind items.Kind, id, userID, status string) (*items.Item, error)
}

func RegisterRoutes(router *gin.RouterGroup, store ItemStore) {
	router.GET("/items/mine", auth.AuthMiddleware(), MyItemsHandler(store))

	for _, kind := range []items.Kind{items.KindLost, items.KindFound} {
		group := router.Group("/items/" + string(kind))

		group.GET("", ListItemsHandler(store, kind))
		group.GET("/:id", GetItemHandler(store, kind))
		group.POST("", auth.AuthMiddleware(), CreateItemHandler(store, kind))
		group.PUT("/:id/status", auth.AuthMiddleware(), UpdateStatusHandler(store, kind))
	}
}
