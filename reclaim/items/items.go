package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/reclaim/server/reclaim/categories"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrNotOwner      = errors.New("item belongs to another user")
	ErrInvalidStatus = errors.New("invalid status for item kind")
	ErrNoCategory    = errors.New("category does not exist")
)

// postgres foreign_key_violation on the category reference
const (
	foreignKeyViolation = "23503"
	categoryConstraint  = "items_category_id_fkey"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts an item and its tags in one transaction
func (r *Repository) Create(
	ctx context.Context,
	kind Kind,
	userID string,
	req CreateItemRequest,
) (*Item, error) {
	images := req.Images
	if images == nil {
		images = []string{}
	}

	// only lost items carry a reward
	reward := req.RewardAmount
	if kind != KindLost {
		reward = 0
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	var id string

	err = tx.QueryRow(
		ctx,
		queryInsert,
		kind,
		req.Title,
		req.Description,
		userID,
		req.CategoryID,
		req.Location,
		req.Latitude,
		req.Longitude,
		req.OccurredAt,
		reward,
		req.ContactInfo,
		images,
		kind.OpenStatus(),
	).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == categoryConstraint {
		return nil, ErrNoCategory
	}

	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	for _, tag := range NormalizeTags(req.Tags) {
		if _, err := tx.Exec(ctx, queryAttachTag, id, tag); err != nil {
			return nil, fmt.Errorf("failed to attach tag %q: %w", tag, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit item: %w", err)
	}

	return r.Get(ctx, kind, id)
}

func (r *Repository) Get(ctx context.Context, kind Kind, id string) (*Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, queryGet, kind, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}

	if err != nil {
		return nil, err
	}

	return item, nil
}

// lists open items of a kind, newest first
func (r *Repository) List(ctx context.Context, kind Kind, filter ListFilter) ([]Item, error) {
	query, args := buildListQuery(kind, filter)
	return r.query(ctx, query, args...)
}

// returns every open item of a kind, the pool suggestions are ranked from
func (r *Repository) ListCandidates(ctx context.Context, kind Kind) ([]Item, error) {
	return r.query(ctx, queryListCandidates, kind, kind.OpenStatus())
}

// returns all items posted by a user, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	return r.query(ctx, queryListByUser, userID)
}

// changes an item's status; only the owner may do so
func (r *Repository) UpdateStatus(ctx context.Context, kind Kind, id, userID, status string) (*Item, error) {
	if !kind.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var ownerID string

	err := r.db.QueryRow(ctx, queryOwner, kind, id).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}

	if err != nil {
		return nil, err
	}

	if ownerID != userID {
		return nil, ErrNotOwner
	}

	if _, err := r.db.Exec(ctx, queryUpdateStatus, status, kind, id); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return r.Get(ctx, kind, id)
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	items := []Item{}

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func buildListQuery(kind Kind, filter ListFilter) (string, []any) {
	var sb strings.Builder

	sb.WriteString(selectItems)
	sb.WriteString(" WHERE i.kind = $1 AND i.status = $2")
	args := []any{kind, kind.OpenStatus()}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		fmt.Fprintf(&sb, " AND i.category_id = $%d", len(args))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		fmt.Fprintf(&sb, " AND (i.title ILIKE $%d OR i.description ILIKE $%d)", len(args), len(args))
	}

	args = append(args, clampLimit(filter.Limit))
	fmt.Fprintf(&sb, " ORDER BY i.created_at DESC LIMIT $%d", len(args))

	return sb.String(), args
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}

	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// trims, dedupes and drops empty tag names, keeping first-seen order
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))

	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}

		seen[t] = true
		out = append(out, t)
	}

	return out
}

func scanItem(row pgx.Row) (*Item, error) {
	var item Item
	var category categories.Category
	var owner users.Summary

	err := row.Scan(
		&item.ID,
		&item.Kind,
		&item.Title,
		&item.Description,
		&item.UserID,
		&category.ID,
		&category.Name,
		&category.Description,
		&category.Icon,
		&category.Color,
		&item.Location,
		&item.Latitude,
		&item.Longitude,
		&item.OccurredAt,
		&item.RewardAmount,
		&item.ContactInfo,
		&item.Images,
		&item.Status,
		&item.Tags,
		&owner.ID,
		&owner.Username,
		&owner.FullName,
		&owner.ReputationScore,
		&owner.IsVerified,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	item.Category = &category
	item.User = &owner

	return &item, nil
}
