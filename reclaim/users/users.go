package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a user by email or creates a new one
func (r *Repository) FindOrCreateByEmail(ctx context.Context, username, email, fullName string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindOrCreateByEmail, username, email, fullName))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// writes the profile fields present in req and returns the updated user
func (r *Repository) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error) {
	return scanUser(r.db.QueryRow(
		ctx,
		queryUpdateProfile,
		userID,
		req.FullName,
		req.Phone,
		req.Bio,
		req.Location,
	))
}

// returns the public profile of a user
func (r *Repository) FindProfile(ctx context.Context, userID string) (*Profile, error) {
	var p Profile

	err := r.db.QueryRow(ctx, queryFindProfile, userID).Scan(
		&p.ID,
		&p.Username,
		&p.FullName,
		&p.ProfilePicture,
		&p.Bio,
		&p.Location,
		&p.ReputationScore,
		&p.IsVerified,
		&p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.ProfilePicture,
		&user.Phone,
		&user.Bio,
		&user.Location,
		&user.ReputationScore,
		&user.IsVerified,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
