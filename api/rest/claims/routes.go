package claims

import (
	"context"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/reclaim/claims"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
)

type ClaimStore interface {
	Create(ctx context.Context, claimantID string, req claims.CreateClaimRequest) (*claims.Claim, error)
	ListForItem(ctx context.Context, kind items.Kind, itemID string) ([]claims.Claim, error)
}

// looks up the item a claim listing is requested for
type ItemGetter interface {
	Get(ctx context.Context, kind items.Kind, id string) (*items.Item, error)
}

func RegisterRoutes(router *gin.RouterGroup, store ClaimStore, itemGetter ItemGetter) {
	router.POST("/claims", auth.AuthMiddleware(), CreateClaimHandler(store))

	for _, kind := range []items.Kind{items.KindLost, items.KindFound} {
		router.GET("/items/"+string(kind)+"/:id/claims", auth.AuthMiddleware(), ListItemClaimsHandler(store, itemGetter, kind))
	}
}
