package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/crypto"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/notify"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

// resetTokenBytes is the entropy of a password reset token.
const resetTokenBytes = 32

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	tokenCache     store.TokenCache
	hasher         crypto.PasswordHasher
	notifier       notify.Notifier
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// hashKey is the HMAC secret reset tokens are stored under. Only the
	// hash reaches redis, so a leaked cache does not leak usable links.
	hashKey string

	resetTokenTTL time.Duration
	resetLinkBase string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenCache store.TokenCache,
	hasher crypto.PasswordHasher,
	notifier notify.Notifier,
	validator validators.Validator,
	cfg config.ServerApp,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenCache:     tokenCache,
		hasher:         hasher,
		notifier:       notifier,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashKey:        cfg.HashKey,
		resetTokenTTL:  cfg.ResetTokenTTL,
		resetLinkBase:  cfg.ResetLinkBase,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new user account and signs it in.
//
// Returns the persisted user carrying a bearer token or:
//   - ErrInvalidDataProvided (wrapping validators.FieldErrors) for bad input.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.signIn(user)
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Err(err).Str("user_id", user.ID).Msg("password comparison failed")
		}
		return models.User{}, ErrWrongCredentials
	}

	return a.signIn(user)
}

// Logout revokes the token's id for the rest of its lifetime.
func (a *authService) Logout(ctx context.Context, token models.Token) (models.MessageResponse, error) {
	if err := a.tokenCache.RevokeToken(ctx, token.ID, token.TTL(a.now())); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", token.UserID).Msg("token revocation failed")
		return models.MessageResponse{}, fmt.Errorf("logout: %w", err)
	}
	return models.MessageResponse{Message: app.MsgLoggedOut}, nil
}

// Profile returns the token owner. A deleted owner invalidates the token.
func (a *authService) Profile(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

// ForgotPassword stores the hash of a fresh reset token and publishes the
// reset link. The response never reveals whether the email is registered,
// and a failed publish is only logged for the same reason.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error) {
	log := logger.FromContext(ctx)
	sent := models.MessageResponse{Message: app.MsgResetLinkSent}

	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.MessageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("password reset for unknown email")
		return sent, nil
	}
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("forgot password: %w", err)
	}

	resetToken, err := utils.RandomToken(resetTokenBytes)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("forgot password: %w", err)
	}

	if err = a.tokenCache.SaveResetToken(ctx, utils.HashString(resetToken, a.hashKey), user.ID, a.resetTokenTTL); err != nil {
		return models.MessageResponse{}, fmt.Errorf("forgot password: %w", err)
	}

	err = a.notifier.NotifyPasswordReset(ctx, models.PasswordResetNotification{
		Email: user.Email,
		Name:  user.Name,
		Link:  strings.TrimRight(a.resetLinkBase, "/") + "/" + url.PathEscape(resetToken),
	})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("password reset notification failed")
	}

	return sent, nil
}

// ResetPassword consumes resetToken and stores the new password. The
// password is validated first so a rejected password does not burn the
// token.
func (a *authService) ResetPassword(ctx context.Context, resetToken string, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.MessageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resetToken = strings.TrimSpace(resetToken)
	if resetToken == "" {
		return models.MessageResponse{}, ErrInvalidResetToken
	}

	userID, err := a.tokenCache.ConsumeResetToken(ctx, utils.HashString(resetToken, a.hashKey))
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return models.MessageResponse{}, ErrInvalidResetToken
	}
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("reset password: %w", err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.MessageResponse{}, err
	}

	err = a.userRepository.UpdatePassword(ctx, userID, hash)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.MessageResponse{}, ErrInvalidResetToken
	}
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("reset password: %w", err)
	}

	return models.MessageResponse{Message: app.MsgPasswordResetDone}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, revoked) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.tokenCache.IsRevoked(ctx, token.ID)
	if err != nil {
		return models.Token{}, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// signIn issues a token for user. The signed string travels in user.Token.
func (a *authService) signIn(user models.User) (models.User, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	user.Token = token.SignedString
	return user, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := a.hasher.Hash(password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return hash, err
}
