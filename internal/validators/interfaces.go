// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation shared by the terminal client
// and the reference backend.
//
// Core concepts:
//   - Validator: generic interface to validate a struct against its
//     `validate` tags. Supports optional field-level scoping.
//   - Forms: the string-typed inputs of the terminal client (ClientForm,
//     LoginForm, ...). They are validated before anything is sent.
//   - FieldErrors: the failure type, one message per field, wrapping
//     ErrInvalidForm.
//
// The backend validates the decoded request bodies (models.ClientData,
// models.ClientPatch, models.RegisterRequest, ...) with the same rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields (Go field names).
	Validate(context.Context, any, ...string) error
}
