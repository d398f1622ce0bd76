package postgres

import (
	"context"
	"database/sql"
	"errors"

	"munsociety/internal/domain"
)

type timelineRepository struct {
	DB *sql.DB
}

// NewTimelineRepository returns a domain.TimelineRepository implemented with Postgres.
func NewTimelineRepository(db *sql.DB) domain.TimelineRepository {
	return &timelineRepository{DB: db}
}

func (r *timelineRepository) Insert(ctx context.Context, e *domain.TimelineEntry) error {
	query := `
		INSERT INTO timeline_entries (id, year, title, description, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, e.ID, e.Year, e.Title, e.Description, e.Order, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *timelineRepository) Update(ctx context.Context, e *domain.TimelineEntry) error {
	query := `
		UPDATE timeline_entries
		SET year = $2, title = $3, description = $4, "order" = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, e.ID, e.Year, e.Title, e.Description, e.Order, e.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *timelineRepository) GetByID(ctx context.Context, id string) (*domain.TimelineEntry, error) {
	query := `
		SELECT id, year, title, description, "order", created_at, updated_at
		FROM timeline_entries
		WHERE id = $1
	`
	e := &domain.TimelineEntry{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Year, &e.Title, &e.Description, &e.Order, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *timelineRepository) List(ctx context.Context) ([]*domain.TimelineEntry, error) {
	query := `
		SELECT id, year, title, description, "order", created_at, updated_at
		FROM timeline_entries
		ORDER BY "order" DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.TimelineEntry, 0)
	for rows.Next() {
		e := &domain.TimelineEntry{}
		if err := rows.Scan(&e.ID, &e.Year, &e.Title, &e.Description, &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *timelineRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM timeline_entries WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
