package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCategoryExists = errors.New("category already exists")
)

// postgres unique_violation
const uniqueViolation = "23505"

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	categories := []Category{}

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color); err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *Repository) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	var c Category

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.Name,
		req.Description,
		req.Icon,
		req.Color,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrCategoryExists
	}

	if err != nil {
		return nil, err
	}

	return &c, nil
}

// inserts any default category that does not exist yet and returns how many were added
func (r *Repository) EnsureDefaults(ctx context.Context) (int, error) {
	added := 0

	for _, d := range Defaults {
		tag, err := r.db.Exec(ctx, queryInsertIfMissing, d.Name, d.Description, d.Icon, d.Color)
		if err != nil {
			return added, fmt.Errorf("failed to insert category %q: %w", d.Name, err)
		}

		added += int(tag.RowsAffected())
	}

	return added, nil
}

func (r *Repository) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := r.db.Query(ctx, queryListTags)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	tags := []Tag{}

	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}

		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}
