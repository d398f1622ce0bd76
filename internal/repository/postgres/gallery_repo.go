package postgres

import (
	"context"
	"database/sql"
	"errors"

	"munsociety/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

// NewGalleryRepository returns a domain.GalleryRepository implemented with Postgres.
func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) Insert(ctx context.Context, img *domain.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (id, src, category, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, img.ID, img.Src, img.Category, string(img.Size), img.CreatedAt, img.UpdatedAt)
	return err
}

func (r *galleryRepository) Update(ctx context.Context, img *domain.GalleryImage) error {
	query := `
		UPDATE gallery_images
		SET src = $2, category = $3, size = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, img.ID, img.Src, img.Category, string(img.Size), img.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	query := `
		SELECT id, src, category, size, created_at, updated_at
		FROM gallery_images
		WHERE id = $1
	`
	img := &domain.GalleryImage{}
	var size string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&img.ID, &img.Src, &img.Category, &size, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	img.Size = domain.ImageSize(size)
	return img, nil
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	query := `
		SELECT id, src, category, size, created_at, updated_at
		FROM gallery_images
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		img := &domain.GalleryImage{}
		var size string
		if err := rows.Scan(&img.ID, &img.Src, &img.Category, &size, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, err
		}
		img.Size = domain.ImageSize(size)
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM gallery_images WHERE id = $1`
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
