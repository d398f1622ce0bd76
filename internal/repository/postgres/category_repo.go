package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"munsociety/internal/domain"

	"github.com/lib/pq"
)

type categoryRepository struct {
	DB *sql.DB
}

// NewCategoryRepository returns a domain.CategoryRepository implemented with Postgres.
// The categories table has a UNIQUE constraint on name.
func NewCategoryRepository(db *sql.DB) domain.CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) UpsertByName(ctx context.Context, c *domain.Category) error {
	// DO NOTHING keeps the existing row untouched when the name is taken,
	// so a repeated save never changes the record count.
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, c.ID, c.Name, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateName, c.Name)
		}
		return err
	}
	return nil
}

func (r *categoryRepository) DeleteByName(ctx context.Context, name string) error {
	query := `DELETE FROM categories WHERE name = $1`
	result, err := r.DB.ExecContext(ctx, query, name)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
