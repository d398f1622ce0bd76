package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"munsociety/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		value   string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name:  "insert or overwrite",
			key:   "showJoinUs",
			value: "true",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO settings`).
					WithArgs("showJoinUs", "true").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "db error",
			key:   "joinUsLink",
			value: "https://x.test",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO settings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSettingRepository(db)
			err = repo.Upsert(ctx, tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingRepository_List(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"key", "value", "created_at", "updated_at"}).
			AddRow("joinUsLink", "https://x.test", ts, ts).
			AddRow("showJoinUs", "true", ts, ts)
		mock.ExpectQuery(`SELECT key, value, created_at, updated_at`).
			WillReturnRows(rows)

		repo := NewSettingRepository(db)
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []*domain.Setting{
			{Key: "joinUsLink", Value: "https://x.test", CreatedAt: ts, UpdatedAt: ts},
			{Key: "showJoinUs", Value: "true", CreatedAt: ts, UpdatedAt: ts},
		}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT key, value, created_at, updated_at`).
			WillReturnError(sql.ErrConnDone)

		repo := NewSettingRepository(db)
		got, err := repo.List(ctx)
		require.Error(t, err)
		require.Nil(t, got)
	})
}

func TestSettingRepository_DeleteByKey(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM settings WHERE key = \$1`).
		WithArgs("obsoleteKey").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSettingRepository(db)
	err = repo.DeleteByKey(ctx, "obsoleteKey")
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
