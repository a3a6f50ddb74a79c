// Package notify delivers password reset notifications of the reference
// backend. The backend only publishes them; sending the actual mail is the
// job of a separate consumer of the queue.
package notify

import (
	"context"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier publishes notifications to users.
type Notifier interface {
	// NotifyPasswordReset publishes the reset link for n.Email.
	NotifyPasswordReset(ctx context.Context, n models.PasswordResetNotification) error
	// Close releases the broker connection, if any.
	Close() error
}

// New returns the AMQP notifier when a broker URL is configured and the
// log-only notifier otherwise.
func New(cfg config.ServerBroker, log *logger.Logger) (Notifier, error) {
	if cfg.URL == "" {
		log.Warn().Msg("AMQP_URL is empty: password reset links are only logged")
		return NewLogNotifier(log), nil
	}
	return NewAMQPNotifier(cfg, log)
}
