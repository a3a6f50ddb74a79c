// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the API access layer of the terminal client: the single
// point of contact with the client-keeper backend.
//
// [ServerAdapter] hides the REST transport from the service layer. Every call
// is one request/response exchange: no retries, no pagination, no caching.
// Authenticated calls read the bearer token from the [*session.Session]
// passed in by the caller; Login and Register start that session and Logout
// ends it.
//
// Every failure is an [*APIError] carrying an [ErrorKind], the HTTP status and
// the backend's message, so callers get one predictable failure contract no
// matter which endpoint failed.
package adapter

import (
	"context"

	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the client-keeper backend.
type ServerAdapter interface {
	// Login authenticates with email and password. On success the returned
	// user carries the bearer token and s is started with it.
	Login(ctx context.Context, s *session.Session, email, password string) (models.User, error)

	// Register creates an account. On success s is started with the issued
	// token, exactly as for Login.
	Register(ctx context.Context, s *session.Session, name, email, password string) (models.User, error)

	// Logout invalidates the token on the backend on a best-effort basis and
	// always clears s. It never returns a remote failure.
	Logout(ctx context.Context, s *session.Session)

	// Profile returns the user the session token belongs to. An expired or
	// missing token yields a KindAuth error.
	Profile(ctx context.Context, s *session.Session) (models.User, error)

	// ForgotPassword asks the backend to send a reset link to email.
	ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error)

	// ResetPassword sets a new password using the token from the reset link.
	ResetPassword(ctx context.Context, resetToken, password string) (models.MessageResponse, error)

	// ListClients returns all clients of the session user. An empty
	// collection is an empty, non-nil slice.
	ListClients(ctx context.Context, s *session.Session) ([]models.Client, error)

	// GetClient returns the client with the given id.
	GetClient(ctx context.Context, s *session.Session, id string) (models.Client, error)

	// GetClientByEmail returns the client with the given email.
	GetClientByEmail(ctx context.Context, s *session.Session, email string) (models.Client, error)

	// CreateClient stores a new client and returns it with the generated
	// identifier and timestamps.
	CreateClient(ctx context.Context, s *session.Session, data models.ClientData) (models.Client, error)

	// ReplaceClient overwrites every writable field of the client.
	ReplaceClient(ctx context.Context, s *session.Session, id string, data models.ClientData) (models.Client, error)

	// PatchClient updates only the non-nil fields of patch.
	PatchClient(ctx context.Context, s *session.Session, id string, patch models.ClientPatch) (models.Client, error)

	// DeleteClient removes the client and returns the backend confirmation.
	DeleteClient(ctx context.Context, s *session.Session, id string) (models.MessageResponse, error)
}
