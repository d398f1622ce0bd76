package postgres

import (
	"context"
	"database/sql"
	"errors"

	"munsociety/internal/domain"
)

type teamRepository struct {
	DB *sql.DB
}

// NewTeamRepository returns a domain.TeamRepository implemented with Postgres.
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{DB: db}
}

func (r *teamRepository) Insert(ctx context.Context, m *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, role, image, focus_x, focus_y, quote, is_senior, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Role, m.Image, m.FocusX, m.FocusY, m.Quote, m.IsSenior,
		m.CreatedAt, m.UpdatedAt,
	)
	return err
}

func (r *teamRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, role = $3, image = $4, focus_x = $5, focus_y = $6,
		    quote = $7, is_senior = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Role, m.Image, m.FocusX, m.FocusY, m.Quote, m.IsSenior,
		m.UpdatedAt,
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

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := `
		SELECT id, name, role, image, focus_x, focus_y, quote, is_senior, created_at, updated_at
		FROM team_members
		WHERE id = $1
	`
	m := &domain.TeamMember{}
	var focusXNull, focusYNull sql.NullInt64
	var quoteNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Role, &m.Image, &focusXNull, &focusYNull,
		&quoteNull, &m.IsSenior, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if focusXNull.Valid {
		x := int(focusXNull.Int64)
		m.FocusX = &x
	}
	if focusYNull.Valid {
		y := int(focusYNull.Int64)
		m.FocusY = &y
	}
	if quoteNull.Valid {
		m.Quote = &quoteNull.String
	}
	return m, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query := `
		SELECT id, name, role, image, focus_x, focus_y, quote, is_senior, created_at, updated_at
		FROM team_members
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		m := &domain.TeamMember{}
		var focusXNull, focusYNull sql.NullInt64
		var quoteNull sql.NullString
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Role, &m.Image, &focusXNull, &focusYNull,
			&quoteNull, &m.IsSenior, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if focusXNull.Valid {
			x := int(focusXNull.Int64)
			m.FocusX = &x
		}
		if focusYNull.Valid {
			y := int(focusYNull.Int64)
			m.FocusY = &y
		}
		if quoteNull.Valid {
			m.Quote = &quoteNull.String
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM team_members WHERE id = $1`
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
