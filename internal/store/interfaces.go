// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/client-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores dashboard accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail matches email case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// ClientRepository stores client records. Every method is scoped to ownerID:
// a record of another owner behaves as if it did not exist.
type ClientRepository interface {
	ListClients(ctx context.Context, ownerID string) ([]models.Client, error)
	GetClient(ctx context.Context, ownerID, clientID string) (models.Client, error)
	GetClientByEmail(ctx context.Context, ownerID, email string) (models.Client, error)
	// CreateClient inserts client; the caller assigns ID and timestamps.
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	// ReplaceClient overwrites every writable field and UpdatedAt.
	ReplaceClient(ctx context.Context, client models.Client) (models.Client, error)
	// PatchClient updates only the non-nil fields of patch and UpdatedAt.
	PatchClient(ctx context.Context, ownerID, clientID string, patch models.ClientPatch, updatedAt time.Time) (models.Client, error)
	DeleteClient(ctx context.Context, ownerID, clientID string) error
}

// TokenCache keeps short-lived token state of the backend.
type TokenCache interface {
	// SaveResetToken maps tokenHash to userID until ttl elapses.
	SaveResetToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	// ConsumeResetToken returns the user of tokenHash and deletes the entry
	// atomically. An unknown or expired hash yields [ErrResetTokenNotFound].
	ConsumeResetToken(ctx context.Context, tokenHash string) (string, error)
	// RevokeToken marks the bearer token id as revoked for ttl.
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
