// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// client-keeper backend handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidEmailPassword is returned when the email/password pair does
	// not match any user.
	MsgInvalidEmailPassword = "Invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgServiceUnavailable is returned when a storage backend is
	// temporarily unreachable.
	MsgServiceUnavailable = "Service temporarily unavailable"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired, revoked or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a registration uses an email
	// that already has an account.
	MsgEmailAlreadyExists = "User with this email already exists"

	// MsgUserNotFound is returned when the token's user no longer exists.
	MsgUserNotFound = "User not found"

	// MsgClientNotFound is returned when a client record does not exist for
	// the current user.
	MsgClientNotFound = "Client not found"

	// MsgClientEmailAlreadyExists is returned when the user already has a
	// client with the same email.
	MsgClientEmailAlreadyExists = "Client with this email already exists"

	// MsgNoFieldsToUpdate is returned for a PATCH without any field.
	MsgNoFieldsToUpdate = "At least one field must be provided for update"

	// MsgInvalidResetToken is returned when a reset token is unknown, used or
	// expired.
	MsgInvalidResetToken = "Invalid or expired reset token"

	// MsgTooManyRequests is returned by rate-limited endpoints.
	MsgTooManyRequests = "Too many requests, please try again later"

	// MsgMethodNotAllowed is returned for a known path with a wrong method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "Route not found"
)

// Confirmation messages of the endpoints without an entity to return.
const (
	MsgLoggedOut         = "Logged out successfully"
	MsgResetLinkSent     = "If an account with that email exists, a password reset link has been sent"
	MsgPasswordResetDone = "Password has been reset successfully"
	MsgClientDeleted     = "Client deleted successfully"
)
