package suggestions

import "codeberg.org/reclaim/server/reclaim/items"

type Query struct {
	Type string `form:"type" binding:"omitempty,item_kind"`
}

// a candidate's full representation plus its match annotations
type SuggestionItem struct {
	items.Item
	SimilarityScore float64  `json:"similarity_score"`
	DistanceKM      *float64 `json:"distance_km,omitempty"`
}

type Response struct {
	Suggestions []SuggestionItem `json:"suggestions"`
}
