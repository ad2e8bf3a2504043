package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that can
// be passed to the adapter, the state store and the services.
type ClientStorages struct {
	// LocalStorage is the durable key/value store.
	LocalStorage LocalStorage
	// Credentials is the typed credential view over LocalStorage.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages initialises the client storage layer. The backend is
// chosen by cfg.DB.DSN:
//   - ":memory:" or an empty DSN keeps everything in process memory;
//   - a "file:" prefix selects the JSON file backend;
//   - anything else is an SQLite database path, migrated on open.
//
// When secret is non-empty every value is sealed before it is written.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, secret string, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	var (
		local LocalStorage
		db    *DB
		err   error
	)

	dsn := cfg.DB.DSN
	switch {
	case dsn == "" || dsn == MemoryDSN || strings.HasPrefix(dsn, "file:"):
		local, err = NewFileLocalStorage(dsn)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		local = NewSQLiteLocalStorage(db, log)
	}

	if secret != "" {
		local, err = NewSealedLocalStorage(ctx, local, secret)
		if err != nil {
			if db != nil {
				_ = db.Close()
			}
			return nil, fmt.Errorf("sealed storage error: %w", err)
		}
	}

	return &ClientStorages{
		LocalStorage: local,
		Credentials:  NewCredentialStore(local),
		db:           db,
	}, nil
}

// Close releases the SQLite connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
