package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

type sqliteLocalStorage struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteLocalStorage returns a [LocalStorage] backed by the local_storage
// table of db.
func NewSQLiteLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqliteLocalStorage{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteLocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.GetItem").
			Str("key", key).
			Msg("failed to query local storage item")
		return "", false, fmt.Errorf("%w: get item %q: %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (s *sqliteLocalStorage) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetItemQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.SetItem").
			Str("key", key).
			Msg("failed to upsert local storage item")
		return fmt.Errorf("%w: set item %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteLocalStorage) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.RemoveItem").
			Str("key", key).
			Msg("failed to delete local storage item")
		return fmt.Errorf("%w: remove item %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}
