package claims

import "codeberg.org/reclaim/server/reclaim/claims"

type CreateResponse struct {
	Message string        `json:"message"`
	Claim   *claims.Claim `json:"claim"`
}

type ListResponse struct {
	Claims []claims.Claim `json:"claims"`
}
