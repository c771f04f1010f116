package claims

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/internal/errors"
	"codeberg.org/reclaim/server/reclaim/claims"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
)

// CreateClaimHandler godoc
// @Summary File a claim
// @Description Claims a found item as yours, or reports that a lost item was found; at least one item id is required
// @Tags claims
// @Accept json
// @Produce json
// @Param request body claims.CreateClaimRequest true "Claim"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/claims [post]
// @Security BearerAuth
func CreateClaimHandler(store ClaimStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req claims.CreateClaimRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		claim, err := store.Create(c.Request.Context(), userID, req)

		switch {
		case stderrors.Is(err, claims.ErrNoItem):
			errors.BadRequest(c, "lost_item_id or found_item_id is required", nil)
		case stderrors.Is(err, claims.ErrItemNotFound):
			errors.NotFound(c, "item")
		case err != nil:
			errors.InternalError(c, "failed to create claim", err)
		default:
			c.JSON(http.StatusCreated, CreateResponse{Message: "claim submitted successfully", Claim: claim})
		}
	}
}

// ListItemClaimsHandler godoc
// @Summary List claims on an item
// @Description Only the item's owner may see its claims
// @Tags claims
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/items/{kind}/{id}/claims [get]
// @Security BearerAuth
func ListItemClaimsHandler(store ClaimStore, itemGetter ItemGetter, kind items.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		id, ok := errors.ValidatePathUUID(c, "id", "item")
		if !ok {
			return
		}

		item, err := itemGetter.Get(c.Request.Context(), kind, id)
		if stderrors.Is(err, items.ErrItemNotFound) {
			errors.NotFound(c, "item")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load item", err)
			return
		}

		if item.UserID != userID {
			errors.Forbidden(c, "only the owner can view claims on an item")
			return
		}

		list, err := store.ListForItem(c.Request.Context(), kind, id)
		if err != nil {
			errors.InternalError(c, "failed to list claims", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Claims: list})
	}
}
