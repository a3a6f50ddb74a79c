package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
)

// sessionRepository keeps the single session row of the terminal client in
// SQLite.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger, now: time.Now}
}

// Save upserts the session row.
func (r *sessionRepository) Save(ctx context.Context, user models.User) error {
	_, err := r.db.ExecContext(ctx, saveSession, user.ID, user.Name, user.Email, user.Token, r.now().UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Load returns the saved session or [ErrSessionNotFound].
func (r *sessionRepository) Load(ctx context.Context) (models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, loadSession).Scan(&user.ID, &user.Name, &user.Email, &user.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Load").Msg("error loading session")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return user, nil
}

// Clear deletes the session row, if any.
func (r *sessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
