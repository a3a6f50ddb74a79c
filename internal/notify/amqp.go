package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/streadway/amqp"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
)

// publisher is the part of *amqp.Channel the notifier uses.
type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type amqpNotifier struct {
	ch      publisher
	closers []io.Closer
	queue   string
	logger  *logger.Logger
}

// NewAMQPNotifier dials the broker, declares the durable notification queue
// and publishes to it through the default exchange.
func NewAMQPNotifier(cfg config.ServerBroker, log *logger.Logger) (Notifier, error) {
	const op = "notify.NewAMQPNotifier"

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: dial: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: channel: %w", op, err)
	}

	if _, err = ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, cfg.Queue, err)
	}

	log.Info().Str("queue", cfg.Queue).Msg("connected to message broker")

	return newAMQPNotifier(ch, cfg.Queue, log, ch, conn), nil
}

func newAMQPNotifier(ch publisher, queue string, log *logger.Logger, closers ...io.Closer) *amqpNotifier {
	return &amqpNotifier{ch: ch, closers: closers, queue: queue, logger: log}
}

// NotifyPasswordReset implements [Notifier]. The message is a persistent
// JSON document.
func (n *amqpNotifier) NotifyPasswordReset(ctx context.Context, msg models.PasswordResetNotification) error {
	const op = "notify.NotifyPasswordReset"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = n.ch.Publish("", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.FromContext(ctx).Debug().Str("queue", n.queue).Msg("password reset notification published")
	return nil
}

// Close closes the channel and then the connection.
func (n *amqpNotifier) Close() error {
	var firstErr error
	for _, c := range n.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
