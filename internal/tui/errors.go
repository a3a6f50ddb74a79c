// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/client-keeper/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// humanizeError returns the line shown under a form or the dashboard.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrNetwork) {
		return "Network error: the server is unreachable"
	}
	return service.UserMessage(err)
}
