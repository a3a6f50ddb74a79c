package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/crypto"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/mock"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAuthCfg = config.ServerApp{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "client-keeper",
	TokenDuration: time.Hour,
	ResetTokenTTL: time.Hour,
	ResetLinkBase: "http://localhost:3000/reset-password/",
	HashKey:       "hash-key",
}

type authMocks struct {
	users    *mock.MockUserRepository
	tokens   *mock.MockTokenCache
	hasher   *mock.MockPasswordHasher
	notifier *mock.MockNotifier
}

// newTestAuthService: хелпер для создания authService с моками
func newTestAuthService(t *testing.T) (*authService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		users:    mock.NewMockUserRepository(ctrl),
		tokens:   mock.NewMockTokenCache(ctrl),
		hasher:   mock.NewMockPasswordHasher(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}
	svc := NewAuthService(m.users, m.tokens, m.hasher, m.notifier, validators.NewValidator(), testAuthCfg, logger.Nop()).(*authService)
	return svc, m
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.ID)
			assert.Equal(t, "Alice", u.Name)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "bcrypt-hash", u.PasswordHash)
			return u, nil
		})

	user, err := svc.Register(ctx, models.RegisterRequest{Name: " Alice ", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, user.Token)

	token, err := utils.ValidateAndParseJWTToken(user.Token, testAuthCfg.TokenSignKey, testAuthCfg.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
}

func TestAuthService_Register_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "nope", Password: "1"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	var fe validators.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Len(t, fe, 3)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: "h"}

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
				m.hasher.EXPECT().Compare("h", "secret1").Return(nil)
			},
		},
		{
			name: "unknown email",
			setup: func(m authMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name: "wrong password",
			setup: func(m authMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
				m.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(crypto.ErrPasswordMismatch)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name: "storage down",
			setup: func(m authMocks) {
				m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrStorageUnavailable)
			},
			wantErr: store.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthService(t)
			tt.setup(m)

			user, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.NotEmpty(t, user.Token)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken(testAuthCfg.TokenIssuer, "u1", time.Hour, testAuthCfg.TokenSignKey)
	require.NoError(t, err)

	m.tokens.EXPECT().IsRevoked(ctx, token.ID).Return(false, nil)
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)

	m.tokens.EXPECT().IsRevoked(ctx, token.ID).Return(true, nil)
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	foreign, err := utils.GenerateJWTToken(testAuthCfg.TokenIssuer, "u1", time.Hour, "other-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Logout_RevokesForRemainingLifetime(t *testing.T) {
	svc, m := newTestAuthService(t)
	now := time.Now()
	svc.now = func() time.Time { return now }

	token, err := utils.GenerateJWTToken(testAuthCfg.TokenIssuer, "u1", time.Hour, testAuthCfg.TokenSignKey)
	require.NoError(t, err)

	m.tokens.EXPECT().RevokeToken(gomock.Any(), token.ID, token.TTL(now)).Return(nil)

	msg, err := svc.Logout(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, app.MsgLoggedOut, msg.Message)
}

func TestAuthService_Profile_DeletedUser(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Profile(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Password reset ───────────────────────────────────────────────────────────

func TestAuthService_ForgotPassword_KnownEmail(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	user := models.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}

	var savedHash string
	m.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(user, nil)
	m.tokens.EXPECT().SaveResetToken(ctx, gomock.Any(), "u1", time.Hour).
		DoAndReturn(func(_ context.Context, hash, _ string, _ time.Duration) error {
			savedHash = hash
			return nil
		})
	m.notifier.EXPECT().NotifyPasswordReset(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.PasswordResetNotification) error {
			assert.Equal(t, "alice@example.com", n.Email)
			assert.Equal(t, "Alice", n.Name)
			require.True(t, strings.HasPrefix(n.Link, "http://localhost:3000/reset-password/"))

			// в хранилище только HMAC токена из ссылки
			raw := strings.TrimPrefix(n.Link, "http://localhost:3000/reset-password/")
			assert.Equal(t, utils.HashString(raw, testAuthCfg.HashKey), savedHash)
			return nil
		})

	msg, err := svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, app.MsgResetLinkSent, msg.Message)
}

func TestAuthService_ForgotPassword_SameAnswerForUnknownEmail(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	msg, err := svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Equal(t, app.MsgResetLinkSent, msg.Message)
}

func TestAuthService_ForgotPassword_NotifyFailureIsHidden(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{ID: "u1", Email: "a@b.co"}, nil)
	m.tokens.EXPECT().SaveResetToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyPasswordReset(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	msg, err := svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, app.MsgResetLinkSent, msg.Message)
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	hash := utils.HashString("reset-token", testAuthCfg.HashKey)

	m.tokens.EXPECT().ConsumeResetToken(ctx, hash).Return("u1", nil)
	m.hasher.EXPECT().Hash("newpass").Return("new-hash", nil)
	m.users.EXPECT().UpdatePassword(ctx, "u1", "new-hash").Return(nil)

	msg, err := svc.ResetPassword(ctx, "reset-token", models.ResetPasswordRequest{Password: "newpass"})
	require.NoError(t, err)
	assert.Equal(t, app.MsgPasswordResetDone, msg.Message)
}

func TestAuthService_ResetPassword_Errors(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		m.tokens.EXPECT().ConsumeResetToken(gomock.Any(), gomock.Any()).Return("", store.ErrResetTokenNotFound)

		_, err := svc.ResetPassword(context.Background(), "used", models.ResetPasswordRequest{Password: "newpass"})
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("empty token", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.ResetPassword(context.Background(), " ", models.ResetPasswordRequest{Password: "newpass"})
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("short password keeps the token", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		// ConsumeResetToken не должен вызываться
		_, err := svc.ResetPassword(context.Background(), "token", models.ResetPasswordRequest{Password: "123"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
