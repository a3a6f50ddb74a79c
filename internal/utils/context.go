// Package utils provides general-purpose helpers shared by the client and
// the server: typed context keys, HMAC hashing,
// the resty HTTP client wrapper, JWT issuing and validation, identifier and
// random token generation.
package utils

import (
	"context"

	"github.com/MKhiriev/client-keeper/models"
)

// contextKey is a private type for context keys.
// A dedicated type keeps the keys from colliding with string keys
// set by other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user identifier.
var UserIDCtxKey = contextKey("userID")

// TokenCtxKey is the key under which the auth middleware stores the
// validated bearer token so that logout can revoke it.
var TokenCtxKey = contextKey("token")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying the user identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// WithToken returns a copy of ctx carrying the validated bearer token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the bearer token stored by the auth middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
