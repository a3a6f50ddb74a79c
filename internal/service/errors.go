package service

import "errors"

// backend
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongCredentials        = errors.New("wrong email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrInvalidResetToken       = errors.New("invalid or expired reset token")
	ErrNoFieldsToUpdate        = errors.New("at least one field must be provided for update")
)

// terminal client
var (
	ErrUnauthorized      = errors.New("not logged in or session expired")
	ErrInvalidInput      = errors.New("request rejected by the server")
	ErrClientNotFound    = errors.New("client not found")
	ErrServerUnavailable = errors.New("server error")
	ErrNetwork           = errors.New("server is unreachable")
)
