// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/client-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error

	// Close releases local resources such as the session database.
	Close() error
}

// userInterface is the part of the terminal UI the runtime drives.
type userInterface interface {
	AuthFlow(ctx context.Context) (models.User, error)
	Dashboard(ctx context.Context, user models.User) (logout bool, err error)
}
