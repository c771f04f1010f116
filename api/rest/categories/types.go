package categories

import "codeberg.org/reclaim/server/reclaim/categories"

type ListResponse struct {
	Categories []categories.Category `json:"categories"`
}

type CreateResponse struct {
	Message  string               `json:"message"`
	Category *categories.Category `json:"category"`
}

type TagsResponse struct {
	Tags []categories.Tag `json:"tags"`
}
