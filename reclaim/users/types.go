package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a marketplace member, as seen by themselves
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name,omitempty"`
	ProfilePicture  string    `json:"profile_picture,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Location        string    `json:"location,omitempty"`
	ReputationScore int       `json:"reputation_score"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// what other members may see of a user
type Profile struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name,omitempty"`
	ProfilePicture  string    `json:"profile_picture,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Location        string    `json:"location,omitempty"`
	ReputationScore int       `json:"reputation_score"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// editable profile fields; nil leaves a field unchanged
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Bio      *string `json:"bio" binding:"omitempty,max=2000"`
	Location *string `json:"location" binding:"omitempty,max=200"`
}

// public view of a user embedded in item and claim responses
type Summary struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	FullName        string `json:"full_name,omitempty"`
	ReputationScore int    `json:"reputation_score"`
	IsVerified      bool   `json:"is_verified"`
}
