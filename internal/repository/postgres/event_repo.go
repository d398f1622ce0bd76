package postgres

import (
	"context"
	"database/sql"
	"errors"

	"munsociety/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, date, location, description, status, registration_link, registration_deadline, fee, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Date, e.Location, e.Description, string(e.Status),
		e.RegistrationLink, e.RegistrationDeadline, e.Fee, e.IsFeatured,
		e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, date = $3, location = $4, description = $5, status = $6,
		    registration_link = $7, registration_deadline = $8, fee = $9,
		    is_featured = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Date, e.Location, e.Description, string(e.Status),
		e.RegistrationLink, e.RegistrationDeadline, e.Fee, e.IsFeatured,
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, date, location, description, status, registration_link, registration_deadline, fee, is_featured, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var linkNull, feeNull sql.NullString
	var deadlineNull sql.NullTime
	var status string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &status,
		&linkNull, &deadlineNull, &feeNull, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	if linkNull.Valid {
		e.RegistrationLink = &linkNull.String
	}
	if deadlineNull.Valid {
		e.RegistrationDeadline = &deadlineNull.Time
	}
	if feeNull.Valid {
		e.Fee = &feeNull.String
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, date, location, description, status, registration_link, registration_deadline, fee, is_featured, created_at, updated_at
		FROM events
		ORDER BY date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var linkNull, feeNull sql.NullString
		var deadlineNull sql.NullTime
		var status string
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &status,
			&linkNull, &deadlineNull, &feeNull, &e.IsFeatured, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		e.Status = domain.EventStatus(status)
		if linkNull.Valid {
			e.RegistrationLink = &linkNull.String
		}
		if deadlineNull.Valid {
			e.RegistrationDeadline = &deadlineNull.Time
		}
		if feeNull.Valid {
			e.Fee = &feeNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
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
