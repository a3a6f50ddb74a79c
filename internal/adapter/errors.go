// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed exchange with the backend.
type ErrorKind int

const (
	// KindServer covers 5xx and any other unexpected non-2xx status.
	KindServer ErrorKind = iota
	// KindValidation covers 4xx statuses other than 401, 403 and 404.
	KindValidation
	// KindAuth covers 401 and 403.
	KindAuth
	// KindNotFound covers 404.
	KindNotFound
	// KindNetwork means no response was received at all.
	KindNetwork
)

// String returns a short lower-case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not-found"
	case KindNetwork:
		return "network"
	default:
		return "server"
	}
}

// Kind sentinels. Every [*APIError] unwraps to the sentinel of its kind, so
// callers can write errors.Is(err, adapter.ErrNotFound).
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("resource not found")
	ErrServer     = errors.New("server error")
	ErrNetwork    = errors.New("network error")
)

const (
	// DefaultErrorMessage is used when the backend did not supply a message.
	DefaultErrorMessage = "An error occurred"

	// NetworkErrorMessage is the message of every KindNetwork error.
	NetworkErrorMessage = "Network error"

	invalidPayloadMessage = "invalid response payload"
)

// APIError is the single failure type produced by [ServerAdapter].
//
// Status is the HTTP status of the response, or 0 for KindNetwork. Message is
// the backend's "message" field or [DefaultErrorMessage]. Err holds the
// underlying cause when there is one (transport or decoding failure).
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Kind == KindNetwork {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("%s error (%d): %s", e.Kind, e.Status, e.Message)
}

// Unwrap returns the kind sentinel and the cause.
func (e *APIError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindAuth:
		return ErrAuth
	case KindNotFound:
		return ErrNotFound
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrServer
	}
}

// KindOf returns the kind of the first [*APIError] in err's chain.
// ok is false when err carries no APIError.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return KindServer, false
}
