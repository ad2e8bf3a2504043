// Package migrations embeds the SQL schema of the local SQLite store and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. Goose output is routed to
// log at debug level so nothing reaches the terminal the UI draws on.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger adapts [logger.Logger] to goose.Logger. Fatalf is logged as an
// error instead of exiting; goose.Up reports the failure through its error.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Error().Str("func", "migrations.Migrate").Msgf(format, v...)
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Debug().Str("func", "migrations.Migrate").Msgf(format, v...)
}
