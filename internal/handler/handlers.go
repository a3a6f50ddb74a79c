package handler

import (
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/handler/http"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg.App, logger)}, nil
}
