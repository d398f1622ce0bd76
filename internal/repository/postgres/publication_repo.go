package postgres

import (
	"context"
	"database/sql"
	"errors"

	"munsociety/internal/domain"

	"github.com/lib/pq"
)

type publicationRepository struct {
	DB *sql.DB
}

// NewPublicationRepository returns a domain.PublicationRepository implemented with Postgres.
// Tags are stored in a native text[] column.
func NewPublicationRepository(db *sql.DB) domain.PublicationRepository {
	return &publicationRepository{DB: db}
}

func (r *publicationRepository) Insert(ctx context.Context, p *domain.Publication) error {
	query := `
		INSERT INTO publications (id, title, excerpt, content, author, date, tags, type, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Excerpt, p.Content, p.Author, p.Date,
		pq.Array(p.Tags), p.Type, p.Image, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *publicationRepository) Update(ctx context.Context, p *domain.Publication) error {
	query := `
		UPDATE publications
		SET title = $2, excerpt = $3, content = $4, author = $5, date = $6,
		    tags = $7, type = $8, image = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Excerpt, p.Content, p.Author, p.Date,
		pq.Array(p.Tags), p.Type, p.Image, p.UpdatedAt,
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

func (r *publicationRepository) GetByID(ctx context.Context, id string) (*domain.Publication, error) {
	query := `
		SELECT id, title, excerpt, content, author, date, tags, type, image, created_at, updated_at
		FROM publications
		WHERE id = $1
	`
	p := &domain.Publication{}
	var contentNull, imageNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Excerpt, &contentNull, &p.Author, &p.Date,
		pq.Array(&p.Tags), &p.Type, &imageNull, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if contentNull.Valid {
		p.Content = &contentNull.String
	}
	if imageNull.Valid {
		p.Image = &imageNull.String
	}
	return p, nil
}

func (r *publicationRepository) List(ctx context.Context) ([]*domain.Publication, error) {
	query := `
		SELECT id, title, excerpt, content, author, date, tags, type, image, created_at, updated_at
		FROM publications
		ORDER BY date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	pubs := make([]*domain.Publication, 0)
	for rows.Next() {
		p := &domain.Publication{}
		var contentNull, imageNull sql.NullString
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Excerpt, &contentNull, &p.Author, &p.Date,
			pq.Array(&p.Tags), &p.Type, &imageNull, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if contentNull.Valid {
			p.Content = &contentNull.String
		}
		if imageNull.Valid {
			p.Image = &imageNull.String
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

func (r *publicationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM publications WHERE id = $1`
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
