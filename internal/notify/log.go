package notify

import (
	"context"

	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
)

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes the reset link to the log.
// It is meant for local runs without a broker.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) NotifyPasswordReset(_ context.Context, msg models.PasswordResetNotification) error {
	n.logger.Info().
		Str("email", msg.Email).
		Str("link", msg.Link).
		Msg("password reset requested")
	return nil
}

func (n *logNotifier) Close() error { return nil }
