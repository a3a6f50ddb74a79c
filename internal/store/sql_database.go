package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/migrations"
)

const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB opened for one of the supported dialects.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema of the DB's dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case dialectPostgres:
		return migrations.Migrate(db.DB)
	case dialectSQLite:
		return migrations.MigrateSQLite(db.DB)
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", db.dialect)
	}
}

// classify wraps transient driver errors with [ErrStorageUnavailable] and
// returns every other error unchanged.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}
