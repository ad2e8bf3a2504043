package store

import (
	"database/sql"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/migrations"
)

// DB is the local SQLite connection shared by the storage implementations.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}
