package suggestions

import (
	"context"

	"codeberg.org/reclaim/server/internal/suggest"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
)

// resolves the source item and the opposite-kind candidate pool
type ItemSource interface {
	Get(ctx context.Context, kind items.Kind, id string) (*items.Item, error)
	ListCandidates(ctx context.Context, kind items.Kind) ([]items.Item, error)
}

func RegisterRoutes(router *gin.RouterGroup, source ItemSource, opts suggest.Options) {
	router.GET("/suggestions/:id", GetSuggestionsHandler(source, opts))
}
