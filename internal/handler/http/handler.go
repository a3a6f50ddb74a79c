package http

import (
	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	metrics       *metrics
	forgotLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metrics:       newMetrics(),
		forgotLimiter: newIPRateLimiter(cfg.ForgotRate, cfg.ForgotBurst),
		logger:        logger,
	}
}
