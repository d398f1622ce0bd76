package postgres

import (
	"context"
	"database/sql"

	"munsociety/internal/domain"
)

type settingRepository struct {
	DB *sql.DB
}

// NewSettingRepository returns a domain.SettingRepository implemented with Postgres.
// Settings are keyed by their unique key column.
func NewSettingRepository(db *sql.DB) domain.SettingRepository {
	return &settingRepository{DB: db}
}

func (r *settingRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	query := `
		SELECT key, value, created_at, updated_at
		FROM settings
		ORDER BY key
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		s := &domain.Setting{}
		if err := rows.Scan(&s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *settingRepository) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, key, value)
	return err
}

func (r *settingRepository) DeleteByKey(ctx context.Context, key string) error {
	query := `DELETE FROM settings WHERE key = $1`
	result, err := r.DB.ExecContext(ctx, query, key)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
