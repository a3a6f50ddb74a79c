// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/adapter"
	"github.com/MKhiriev/client-keeper/internal/validators"
)

// mapAdapterError translates the adapter's error kind into a service business
// error. The *adapter.APIError stays in the chain so its message survives.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	kind, ok := adapter.KindOf(err)
	if !ok {
		return err
	}

	switch kind {
	case adapter.KindAuth:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case adapter.KindNotFound:
		return fmt.Errorf("%w: %w", ErrClientNotFound, err)
	case adapter.KindValidation:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case adapter.KindNetwork:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
}

// UserMessage returns the text the terminal shows for err: the first field
// error of a rejected form, the backend's message, or the error itself.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var fe validators.FieldErrors
	if errors.As(err, &fe) {
		return fe.First()
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return err.Error()
}
