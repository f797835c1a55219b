// Package rabbitmq publishes advisory notifications to a fanout exchange so
// that any number of consumers can subscribe.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

const DefaultNotificationsExchange = "workorders.notifications"

// publisher is the subset of *amqp091.Channel the notification publisher needs.
type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// NotificationMessage is the JSON body of a published notification.
type NotificationMessage struct {
	Message  string         `json:"message"`
	Severity ports.Severity `json:"severity"`
	SentAt   string         `json:"sentAt"`
}

// NotificationPublisher implements ports.NotificationSink. Publishing failures
// are logged and swallowed.
type NotificationPublisher struct {
	ch       publisher
	exchange string
	clock    kernel.Clock
	logger   *slog.Logger
}

func NewNotificationPublisher(
	ch publisher,
	exchange string,
	clock kernel.Clock,
	logger *slog.Logger,
) *NotificationPublisher {
	if exchange == "" {
		exchange = DefaultNotificationsExchange
	}
	return &NotificationPublisher{
		ch:       ch,
		exchange: exchange,
		clock:    clock,
		logger:   logger.With("component", "notification_publisher", "exchange", exchange),
	}
}

func (p *NotificationPublisher) Notify(ctx context.Context, message string, severity ports.Severity) {
	now := p.clock.Now()

	body, err := json.Marshal(NotificationMessage{
		Message:  message,
		Severity: severity,
		SentAt:   now.Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode notification", "error", err)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    now,
		Type:         string(severity),
		Body:         body,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish notification",
			"severity", string(severity),
			"error", err,
		)
	}
}

// Connection owns the AMQP connection and the channel notifications are published on.
type Connection struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// Dial connects to the broker and declares the durable fanout exchange.
func Dial(url, exchange string) (*Connection, error) {
	if exchange == "" {
		exchange = DefaultNotificationsExchange
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp091.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	return &Connection{conn: conn, channel: ch, exchange: exchange}, nil
}

// Channel returns the channel to publish on.
func (c *Connection) Channel() *amqp091.Channel {
	return c.channel
}

// Exchange returns the declared exchange name.
func (c *Connection) Exchange() string {
	return c.exchange
}

// Close closes the channel and then the connection.
func (c *Connection) Close() error {
	if err := c.channel.Close(); err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("error closing channel: %w", err)
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}
