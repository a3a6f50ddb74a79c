// Package migrations embeds and applies the goose schema migrations of both
// binaries: the PostgreSQL schema of the backend and the SQLite session
// store of the terminal client.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed sqlite/*.sql
var embedSQLiteMigrations embed.FS

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

// Migrate applies the backend schema to a PostgreSQL database opened with
// the pgx driver.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateSQLite applies the client session schema to a SQLite database.
func MigrateSQLite(db *sql.DB) error {
	return up(db, embedSQLiteMigrations, "sqlite3", "sqlite")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
