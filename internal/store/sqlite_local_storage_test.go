package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestSQLiteStorage(t *testing.T) (LocalStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	s := NewSQLiteLocalStorage(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	s.(*sqliteLocalStorage).now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}
	return s, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestSQLiteLocalStorage_GetItem(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT item_value FROM local_storage WHERE item_key = ?`)

	tests := []struct {
		name      string
		setup     func(m sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   error
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).WithArgs("access_token").
					WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow("tok"))
			},
			wantValue: "tok",
			wantOK:    true,
		},
		{
			name: "missing key",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).WithArgs("access_token").WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "query error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).WithArgs("access_token").WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestSQLiteStorage(t)
			tt.setup(mock)

			value, ok, err := s.GetItem(testContext(), "access_token")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLiteLocalStorage_SetItem(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO local_storage (item_key,item_value,updated_at) VALUES (?,?,?) ON CONFLICT(item_key) DO UPDATE SET`)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("upsert", func(t *testing.T) {
		s, mock := newTestSQLiteStorage(t)
		mock.ExpectExec(query).WithArgs("theme", "dark", now).WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, s.SetItem(testContext(), "theme", "dark"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		s, mock := newTestSQLiteStorage(t)
		mock.ExpectExec(query).WillReturnError(errors.New("database is locked"))

		err := s.SetItem(testContext(), "theme", "dark")
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.Contains(t, err.Error(), "theme")
	})
}

func TestSQLiteLocalStorage_RemoveItem(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM local_storage WHERE item_key = ?`)

	s, mock := newTestSQLiteStorage(t)
	mock.ExpectExec(query).WithArgs("user").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, s.RemoveItem(testContext(), "user"))

	mock.ExpectExec(query).WithArgs("user").WillReturnError(errors.New("boom"))
	require.ErrorIs(t, s.RemoveItem(testContext(), "user"), ErrExecutingStatement)

	assert.NoError(t, mock.ExpectationsWereMet())
}
