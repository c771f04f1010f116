package items

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/internal/errors"
	"codeberg.org/reclaim/server/internal/geo"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
)

// CreateItemHandler godoc
// @Summary Post a lost or found item
// @Description Accepts a JSON body or form fields; form posts may send tags comma separated
// @Tags items
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param request body items.CreateItemRequest true "Item details"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/items/{kind} [post]
// @Security BearerAuth
func CreateItemHandler(store ItemStore, kind items.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		req, err := bindCreateRequest(c, kind)
		if err != nil {
			errors.ValidationError(c, err)
			return
		}

		item, err := store.Create(c.Request.Context(), kind, userID, req)
		if stderrors.Is(err, items.ErrNoCategory) {
			errors.BadRequest(c, "unknown category", err)
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to create item", err)
			return
		}

		c.JSON(http.StatusCreated, ItemResponse{
			Message: string(kind) + " item posted successfully",
			Item:    item,
		})
	}
}

// ListItemsHandler godoc
// @Summary List open items
// @Description Newest first; with location=lat,lng only items within radius km are returned, annotated with distance_km
// @Tags items
// @Produce json
// @Param category_id query string false "Category ID"
// @Param search query string false "Substring of title or description"
// @Param location query string false "lat,lng"
// @Param radius query number false "Radius in km (default 10)"
// @Param limit query int false "Maximum items (default 50)"
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/items/{kind} [get]
func ListItemsHandler(store ItemStore, kind items.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q ListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			errors.ValidationError(c, err)
			return
		}

		var center *geo.Point

		if q.Location != "" {
			p, err := geo.ParsePoint(q.Location)
			if err != nil {
				errors.BadRequest(c, "invalid location", err)
				return
			}

			center = &p
		}

		list, err := store.List(c.Request.Context(), kind, items.ListFilter{
			CategoryID: q.CategoryID,
			Search:     q.Search,
			Limit:      q.Limit,
		})

		if err != nil {
			errors.InternalError(c, "failed to list items", err)
			return
		}

		radius := q.Radius
		if radius == 0 {
			radius = defaultRadiusKM
		}

		c.JSON(http.StatusOK, ListResponse{Items: locate(list, center, radius)})
	}
}

// keeps items within radius of center, nearest distance attached; no center keeps everything
func locate(list []items.Item, center *geo.Point, radiusKM float64) []ListedItem {
	out := make([]ListedItem, 0, len(list))

	for _, item := range list {
		if center == nil {
			out = append(out, ListedItem{Item: item})
			continue
		}

		p := item.Point()
		if p == nil || !p.Valid() || !geo.WithinRadius(*center, *p, radiusKM) {
			continue
		}

		out = append(out, ListedItem{Item: item, DistanceKM: geo.OptionalDistanceKM(center, p)})
	}

	return out
}

// GetItemHandler godoc
// @Summary Get an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} items.Item
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/items/{kind}/{id} [get]
func GetItemHandler(store ItemStore, kind items.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id", "item")
		if !ok {
			return
		}

		item, err := store.Get(c.Request.Context(), kind, id)
		if stderrors.Is(err, items.ErrItemNotFound) {
			errors.NotFound(c, "item")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to get item", err)
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// UpdateStatusHandler godoc
// @Summary Change an item's status
// @Description lost items: active, found, closed; found items: available, claimed, returned
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body items.UpdateStatusRequest true "New status"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/items/{kind}/{id}/status [put]
// @Security BearerAuth
func UpdateStatusHandler(store ItemStore, kind items.Kind) gin.HandlerFunc {
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

		var req items.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		item, err := store.UpdateStatus(c.Request.Context(), kind, id, userID, req.Status)

		switch {
		case stderrors.Is(err, items.ErrInvalidStatus):
			errors.BadRequest(c, "invalid status for a "+string(kind)+" item", nil)
		case stderrors.Is(err, items.ErrItemNotFound):
			errors.NotFound(c, "item")
		case stderrors.Is(err, items.ErrNotOwner):
			errors.Forbidden(c, "only the owner can change an item's status")
		case err != nil:
			errors.InternalError(c, "failed to update status", err)
		default:
			c.JSON(http.StatusOK, ItemResponse{Message: "status updated successfully", Item: item})
		}
	}
}

// MyItemsHandler godoc
// @Summary List the caller's items
// @Tags items
// @Produce json
// @Success 200 {object} MyItemsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/items/mine [get]
// @Security BearerAuth
func MyItemsHandler(store ItemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		all, err := store.ListByUser(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list items", err)
			return
		}

		resp := MyItemsResponse{LostItems: []items.Item{}, FoundItems: []items.Item{}}

		for _, item := range all {
			if item.Kind == items.KindLost {
				resp.LostItems = append(resp.LostItems, item)
			} else {
				resp.FoundItems = append(resp.FoundItems, item)
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
