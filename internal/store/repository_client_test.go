// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientRepo(t *testing.T) (*clientRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &clientRepository{db: &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()}, logger: l}, mock, db
}

func clientRow(c models.Client) *sqlmock.Rows {
	return sqlmock.NewRows(clientColumns).AddRow(
		c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Company,
		c.SubscriptionRenewalDate, c.SubscriptionAmount, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
}

func sampleClient() models.Client {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return models.Client{
		ID:                      "c1",
		OwnerID:                 "u1",
		Name:                    "Bob",
		Email:                   "bob@example.com",
		Phone:                   "5551234567",
		Company:                 "Acme",
		SubscriptionRenewalDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		SubscriptionAmount:      99.5,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func TestListClients(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	c := sampleClient()
	mock.ExpectQuery(`SELECT .* FROM clients WHERE owner_id = \$1 ORDER BY`).
		WithArgs("u1").
		WillReturnRows(clientRow(c))

	got, err := repo.ListClients(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, c, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListClients_Empty(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM clients").
		WillReturnRows(sqlmock.NewRows(clientColumns))

	got, err := repo.ListClients(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetClient_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id = \$1 AND owner_id = \$2`).
		WithArgs("c1", "u2").
		WillReturnRows(sqlmock.NewRows(clientColumns))

	_, err := repo.GetClient(context.Background(), "u2", "c1")

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetClientByEmail(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	c := sampleClient()
	mock.ExpectQuery(`SELECT .* FROM clients WHERE owner_id = \$1 AND LOWER\(email\) = LOWER\(\$2\)`).
		WithArgs("u1", "BOB@example.com").
		WillReturnRows(clientRow(c))

	got, err := repo.GetClientByEmail(context.Background(), "u1", "BOB@example.com")

	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
}

func TestCreateClient_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateClient(context.Background(), sampleClient())

	assert.ErrorIs(t, err, ErrClientEmailAlreadyExists)
}

func TestCreateClient(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	c := sampleClient()
	mock.ExpectQuery("INSERT INTO clients .* RETURNING").
		WithArgs(c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Company,
			c.SubscriptionRenewalDate, c.SubscriptionAmount, c.Notes, c.CreatedAt, c.UpdatedAt).
		WillReturnRows(clientRow(c))

	got, err := repo.CreateClient(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestPatchClient_OnlySetColumns(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	c := sampleClient()
	c.SubscriptionAmount = 50
	updatedAt := c.UpdatedAt.Add(time.Hour)
	amount := 50.0

	mock.ExpectQuery(`UPDATE clients SET subscription_amount = \$1, updated_at = \$2 WHERE id = \$3 AND owner_id = \$4 RETURNING`).
		WithArgs(amount, updatedAt, "c1", "u1").
		WillReturnRows(clientRow(c))

	got, err := repo.PatchClient(context.Background(), "u1", "c1", models.ClientPatch{SubscriptionAmount: &amount}, updatedAt)

	require.NoError(t, err)
	assert.Equal(t, 50.0, got.SubscriptionAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceClient_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE clients SET").
		WillReturnRows(sqlmock.NewRows(clientColumns))

	_, err := repo.ReplaceClient(context.Background(), sampleClient())

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM clients WHERE id = \$1 AND owner_id = \$2`).
		WithArgs("c1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteClient(context.Background(), "u1", "c1"))
}

func TestDeleteClient_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM clients").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteClient(context.Background(), "u1", "c1")

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient_TransientError(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM clients").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.DeleteClient(context.Background(), "u1", "c1")

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.False(t, errors.Is(err, ErrClientNotFound))
}
