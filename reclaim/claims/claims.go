package claims

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/reclaim/server/reclaim/items"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNoItem        = errors.New("a claim must reference a lost or a found item")
	ErrItemNotFound  = errors.New("claimed item not found")
	ErrClaimNotFound = errors.New("claim not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// files a pending claim against a lost item, a found item, or both
func (r *Repository) Create(ctx context.Context, claimantID string, req CreateClaimRequest) (*Claim, error) {
	if req.LostItemID == nil && req.FoundItemID == nil {
		return nil, ErrNoItem
	}

	var id string

	err := r.db.QueryRow(
		ctx,
		queryInsert,
		req.LostItemID,
		req.FoundItemID,
		claimantID,
		req.Message,
		StatusPending,
	).Scan(&id)

	// the insert selects nothing when a referenced item is missing
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to insert claim: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *Repository) Get(ctx context.Context, id string) (*Claim, error) {
	claim, err := scanClaim(r.db.QueryRow(ctx, queryGet, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClaimNotFound
	}

	if err != nil {
		return nil, err
	}

	return claim, nil
}

// lists claims filed against an item, newest first
func (r *Repository) ListForItem(ctx context.Context, kind items.Kind, itemID string) ([]Claim, error) {
	query := queryListForLost
	if kind == items.KindFound {
		query = queryListForFound
	}

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	claims := []Claim{}

	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}

		claims = append(claims, *claim)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

func scanClaim(row pgx.Row) (*Claim, error) {
	var c Claim
	var claimant users.Summary

	err := row.Scan(
		&c.ID,
		&c.LostItemID,
		&c.FoundItemID,
		&c.ClaimantID,
		&c.Message,
		&c.Status,
		&claimant.ID,
		&claimant.Username,
		&claimant.FullName,
		&claimant.ReputationScore,
		&claimant.IsVerified,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	c.Claimant = &claimant

	return &c, nil
}
