// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectClientsQuery(t *testing.T) {
	query, args, err := buildSelectClientsQuery("u1")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, owner_id, name, email, phone, company, subscription_renewal_date, subscription_amount, notes, created_at, updated_at "+
			"FROM clients WHERE owner_id = $1 ORDER BY subscription_renewal_date ASC, name ASC",
		query)
	assert.Equal(t, []any{"u1"}, args)
}

func Test_buildSelectClientByEmailQuery(t *testing.T) {
	query, args, err := buildSelectClientByEmailQuery("u1", "Bob@Example.com")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE owner_id = $1 AND LOWER(email) = LOWER($2)")
	assert.Equal(t, []any{"u1", "Bob@Example.com"}, args)
}

func Test_buildPatchClientQuery(t *testing.T) {
	updatedAt := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		patch     models.ClientPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "only timestamp for empty patch",
			patch:     models.ClientPatch{},
			wantQuery: "UPDATE clients SET updated_at = $1 WHERE id = $2 AND owner_id = $3",
			wantArgs:  []any{updatedAt, "c1", "u1"},
		},
		{
			name:      "name and notes",
			patch:     models.ClientPatch{Name: strPtr("Carol"), Notes: strPtr("")},
			wantQuery: "UPDATE clients SET name = $1, notes = $2, updated_at = $3 WHERE id = $4 AND owner_id = $5",
			wantArgs:  []any{"Carol", "", updatedAt, "c1", "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildPatchClientQuery("u1", "c1", tt.patch, updatedAt)
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantQuery)
			assert.Contains(t, query, "RETURNING id, owner_id")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildReplaceClientQuery_SetsEveryWritableColumn(t *testing.T) {
	c := sampleClient()

	query, args, err := buildReplaceClientQuery(c)
	require.NoError(t, err)

	for _, col := range []string{"name", "email", "phone", "company", "subscription_renewal_date", "subscription_amount", "notes", "updated_at"} {
		assert.Contains(t, query, col+" = $")
	}
	// created_at и owner_id не перезаписываются
	assert.NotContains(t, query, "created_at = $")
	assert.NotContains(t, query, "owner_id = $1")
	assert.Len(t, args, 10)
}

func Test_buildDeleteClientQuery(t *testing.T) {
	query, args, err := buildDeleteClientQuery("u1", "c1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM clients WHERE id = $1 AND owner_id = $2", query)
	assert.Equal(t, []any{"c1", "u1"}, args)
}

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery("a@b.co")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, password_hash, created_at FROM users WHERE LOWER(email) = LOWER($1)", query)
	assert.Equal(t, []any{"a@b.co"}, args)
}

func strPtr(s string) *string { return &s }
