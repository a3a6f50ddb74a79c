package service

import (
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/crypto"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/notify"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ClientsService ClientsService
}

func NewServices(storages *store.Storages, notifier notify.Notifier, hasher crypto.PasswordHasher, cfg config.ServerApp, logger *logger.Logger) *Services {
	validator := validators.NewValidator()

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.TokenCache,
			hasher,
			notifier,
			validator,
			cfg,
			logger,
		),
		ClientsService: NewClientsValidationService(validator).
			Wrap(NewClientsService(storages.ClientRepository, logger)),
	}
}
