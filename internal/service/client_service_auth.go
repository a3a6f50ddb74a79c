package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/adapter"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   *session.Session
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, s *session.Session, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, session: s, validator: validator, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, form validators.LoginForm) (models.User, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Login(ctx, a.session, form.Email, form.Password)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) Register(ctx context.Context, form validators.RegisterForm) (models.User, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Register(ctx, a.session, form.Name, form.Email, form.Password)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) {
	a.adapter.Logout(ctx, a.session)
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.adapter.Profile(ctx, a.session)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrUnauthorized) {
			// токен истёк: сессию больше нельзя использовать
			if clearErr := a.session.Clear(ctx); clearErr != nil {
				a.logger.Warn().Err(clearErr).Msg("expired session was not removed")
			}
		}
		return models.User{}, err
	}

	a.session.SetUser(user)
	return user, nil
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, form validators.ForgotPasswordForm) (models.MessageResponse, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.MessageResponse{}, err
	}

	msg, err := a.adapter.ForgotPassword(ctx, form.Email)
	if err != nil {
		return models.MessageResponse{}, mapAdapterError(err)
	}
	return msg, nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, form validators.ResetPasswordForm) (models.MessageResponse, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.MessageResponse{}, err
	}

	msg, err := a.adapter.ResetPassword(ctx, form.Token, form.Password)
	if err != nil {
		return models.MessageResponse{}, mapAdapterError(err)
	}
	return msg, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.User, error) {
	if _, err := a.session.Restore(ctx); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return a.Profile(ctx)
}

func (a *clientAuthService) Session() *session.Session {
	return a.session
}
