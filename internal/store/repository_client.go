// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository]. Every query filters on owner_id.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by db.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *clientRepository) ListClients(ctx context.Context, ownerID string) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClientsQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Msg("error selecting clients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			log.Err(err).Str("func", "*clientRepository.ListClients").Msg("error scanning client")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return clients, nil
}

func (r *clientRepository) GetClient(ctx context.Context, ownerID, clientID string) (models.Client, error) {
	query, args, err := buildSelectClientQuery(ownerID, clientID)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*clientRepository.GetClient", query, args)
}

func (r *clientRepository) GetClientByEmail(ctx context.Context, ownerID, email string) (models.Client, error) {
	query, args, err := buildSelectClientByEmailQuery(ownerID, email)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*clientRepository.GetClientByEmail", query, args)
}

func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	query, args, err := buildInsertClientQuery(client)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*clientRepository.CreateClient", query, args)
}

func (r *clientRepository) ReplaceClient(ctx context.Context, client models.Client) (models.Client, error) {
	query, args, err := buildReplaceClientQuery(client)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*clientRepository.ReplaceClient", query, args)
}

func (r *clientRepository) PatchClient(ctx context.Context, ownerID, clientID string, patch models.ClientPatch, updatedAt time.Time) (models.Client, error) {
	query, args, err := buildPatchClientQuery(ownerID, clientID, patch, updatedAt)
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*clientRepository.PatchClient", query, args)
}

func (r *clientRepository) DeleteClient(ctx context.Context, ownerID, clientID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteClientQuery(ownerID, clientID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("error deleting client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// queryOne runs a statement returning a single client row and maps the
// well-known failures to sentinels.
func (r *clientRepository) queryOne(ctx context.Context, fn, query string, args []any) (models.Client, error) {
	log := logger.FromContext(ctx)

	client, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return client, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Client{}, ErrClientNotFound
	case uniqueViolation(err):
		return models.Client{}, ErrClientEmailAlreadyExists
	default:
		log.Err(err).Str("func", fn).Msg("client query failed")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
}

func scanClient(row rowScanner) (models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.SubscriptionRenewalDate,
		&c.SubscriptionAmount,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
