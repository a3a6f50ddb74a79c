package service

import (
	"context"

	"github.com/MKhiriev/client-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ClientsServiceWrapper

// AuthService covers accounts, bearer tokens and the password reset flow of
// the reference backend.
type AuthService interface {
	// Register creates the account and returns it with a fresh token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks the credentials and returns the user with a fresh token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Logout revokes token until it expires.
	Logout(ctx context.Context, token models.Token) (models.MessageResponse, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	// ForgotPassword answers the same way whether or not the email is known.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, resetToken string, req models.ResetPasswordRequest) (models.MessageResponse, error)
	// ParseToken verifies the signature, issuer, expiry and revocation of a
	// bearer token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ClientsService manages the client records of one owner.
type ClientsService interface {
	List(ctx context.Context, ownerID string) ([]models.Client, error)
	Get(ctx context.Context, ownerID, clientID string) (models.Client, error)
	GetByEmail(ctx context.Context, ownerID, email string) (models.Client, error)
	Create(ctx context.Context, ownerID string, data models.ClientData) (models.Client, error)
	Replace(ctx context.Context, ownerID, clientID string, data models.ClientData) (models.Client, error)
	Patch(ctx context.Context, ownerID, clientID string, patch models.ClientPatch) (models.Client, error)
	Delete(ctx context.Context, ownerID, clientID string) (models.MessageResponse, error)
}

// ClientsServiceWrapper defines middleware composition for ClientsService.
// Implementations wrap an existing ClientsService to add behavior such as
// validating.
type ClientsServiceWrapper interface {
	Wrap(ClientsService) ClientsService // returns a decorated ClientsService applying additional behavior
}
