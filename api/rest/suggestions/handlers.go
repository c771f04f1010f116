package suggestions

import (
	stderrors "errors"
	"net/http"
	"time"

	"codeberg.org/reclaim/server/internal/errors"
	"codeberg.org/reclaim/server/internal/metrics"
	"codeberg.org/reclaim/server/internal/suggest"
	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin"
)

// GetSuggestionsHandler godoc
// @Summary Suggest matches for an item
// @Description Ranks open items of the opposite kind by TF-IDF cosine similarity to the source item's title and description, best first
// @Tags suggestions
// @Produce json
// @Param id path string true "Source item ID"
// @Param type query string false "Kind of the source item: lost (default) or found"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/suggestions/{id} [get]
func GetSuggestionsHandler(source ItemSource, opts suggest.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q Query
		if err := c.ShouldBindQuery(&q); err != nil {
			errors.BadRequest(c, "type must be lost or found", err)
			return
		}

		kind := items.KindLost
		if q.Type != "" {
			kind = items.Kind(q.Type)
		}

		id, ok := errors.ValidatePathUUID(c, "id", "item")
		if !ok {
			return
		}

		ctx := c.Request.Context()

		item, err := source.Get(ctx, kind, id)
		if stderrors.Is(err, items.ErrItemNotFound) {
			errors.NotFound(c, "item")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load item", err)
			return
		}

		pool, err := source.ListCandidates(ctx, kind.Opposite())
		if err != nil {
			errors.InternalError(c, "failed to load candidates", err)
			return
		}

		start := time.Now()
		ranked, err := suggest.RankWith(opts, toCandidate(*item), toCandidates(pool))
		metrics.ObserveSuggestion(string(kind), len(pool), len(ranked), time.Since(start), err)

		if err != nil {
			errors.InternalError(c, "failed to compute suggestions", err)
			return
		}

		resp := Response{Suggestions: make([]SuggestionItem, 0, len(ranked))}

		for _, s := range ranked {
			resp.Suggestions = append(resp.Suggestions, SuggestionItem{
				Item:            s.Item,
				SimilarityScore: s.SimilarityScore,
				DistanceKM:      s.DistanceKM,
			})
		}

		c.JSON(http.StatusOK, resp)
	}
}

func toCandidate(item items.Item) suggest.Candidate[items.Item] {
	return suggest.Candidate[items.Item]{
		Text:     suggest.ItemText(item.Title, item.Description),
		Location: item.Point(),
		Payload:  item,
	}
}

func toCandidates(pool []items.Item) []suggest.Candidate[items.Item] {
	out := make([]suggest.Candidate[items.Item], len(pool))
	for i, item := range pool {
		out[i] = toCandidate(item)
	}

	return out
}
