package items

import (
	"fmt"
	"slices"
	"time"

	"codeberg.org/reclaim/server/internal/geo"
	"codeberg.org/reclaim/server/reclaim/categories"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// whether an item was lost or found
type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

// lost item lifecycle
const (
	StatusActive = "active"
	StatusFound  = "found"
	StatusClosed = "closed"
)

// found item lifecycle
const (
	StatusAvailable = "available"
	StatusClaimed   = "claimed"
	StatusReturned  = "returned"
)

var statuses = map[Kind][]string{
	KindLost:  {StatusActive, StatusFound, StatusClosed},
	KindFound: {StatusAvailable, StatusClaimed, StatusReturned},
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLost, KindFound:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid item kind %q: expected lost or found", s)
	}
}

// the kind whose items are matched against this one
func (k Kind) Opposite() Kind {
	if k == KindLost {
		return KindFound
	}

	return KindLost
}

// status of newly posted items, and of items still open for matching
func (k Kind) OpenStatus() string {
	if k == KindLost {
		return StatusActive
	}

	return StatusAvailable
}

func (k Kind) Statuses() []string {
	return statuses[k]
}

func (k Kind) ValidStatus(status string) bool {
	return slices.Contains(statuses[k], status)
}

type Item struct {
	ID           string               `json:"id"`
	Kind         Kind                 `json:"kind"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	UserID       string               `json:"user_id"`
	Category     *categories.Category `json:"category"`
	Location     string               `json:"location,omitempty"`
	Latitude     *float64             `json:"latitude"`
	Longitude    *float64             `json:"longitude"`
	OccurredAt   *time.Time           `json:"occurred_at,omitempty"`
	RewardAmount float64              `json:"reward_amount"`
	ContactInfo  string               `json:"contact_info,omitempty"`
	Images       []string             `json:"images"`
	Status       string               `json:"status"`
	Tags         []string             `json:"tags"`
	User         *users.Summary       `json:"user"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// coordinates of the item, nil when it was posted without both
func (i *Item) Point() *geo.Point {
	return geo.NewPoint(i.Latitude, i.Longitude)
}

// fields of a new lost or found post
type CreateItemRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Description  string     `json:"description" binding:"required,max=5000"`
	CategoryID   string     `json:"category_id" binding:"required,uuid"`
	Location     string     `json:"location,omitempty" binding:"max=500"`
	Latitude     *float64   `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude    *float64   `json:"longitude,omitempty" binding:"omitempty,longitude"`
	OccurredAt   *time.Time `json:"occurred_at,omitempty"`
	RewardAmount float64    `json:"reward_amount,omitempty" binding:"min=0"`
	ContactInfo  string     `json:"contact_info,omitempty" binding:"max=500"`
	Images       []string   `json:"images,omitempty" binding:"max=10,dive,url"`
	Tags         []string   `json:"tags,omitempty" binding:"max=20,dive,max=50"`
}

type ListFilter struct {
	CategoryID string // exact category match
	Search     string // substring of title or description
	Limit      int
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,item_status"`
}
