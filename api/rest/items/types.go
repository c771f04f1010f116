package items

import "codeberg.org/reclaim/server/reclaim/items"

const defaultRadiusKM = 10

type ListQuery struct {
	CategoryID string  `form:"category_id" binding:"omitempty,uuid"`
	Search     string  `form:"search" binding:"max=200"`
	Location   string  `form:"location"` // "lat,lng"
	Radius     float64 `form:"radius" binding:"omitempty,gt=0,lte=20100"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=200"`
}

// an item in a listing, with its distance when the listing was located
type ListedItem struct {
	items.Item
	DistanceKM *float64 `json:"distance_km,omitempty"`
}

type ListResponse struct {
	Items []ListedItem `json:"items"`
}

type ItemResponse struct {
	Message string      `json:"message,omitempty"`
	Item    *items.Item `json:"item"`
}

type MyItemsResponse struct {
	LostItems  []items.Item `json:"lost_items"`
	FoundItems []items.Item `json:"found_items"`
}
