package claims

import (
	"time"

	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// a request by a user to match a lost item with a found one
type Claim struct {
	ID          string         `json:"id"`
	LostItemID  *string        `json:"lost_item_id"`
	FoundItemID *string        `json:"found_item_id"`
	ClaimantID  string         `json:"claimant_id"`
	Message     string         `json:"message"`
	Status      string         `json:"status"`
	Claimant    *users.Summary `json:"claimant"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type CreateClaimRequest struct {
	LostItemID  *string `json:"lost_item_id" binding:"omitempty,uuid"`
	FoundItemID *string `json:"found_item_id" binding:"omitempty,uuid"`
	Message     string  `json:"message" binding:"max=2000"`
}
