package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const bookingQueueName = "booking.lifecycle"

type Publisher struct {
	url    string
	logger *zap.Logger
}

func NewPublisher(url string, logger *zap.Logger) *Publisher {
	return &Publisher{url: url, logger: logger}
}

// PublishBookingEvent publishes a persistent message to the durable
// booking.lifecycle queue. Errors are logged and returned so callers can
// ignore them without interrupting the request flow.
func (p *Publisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	conn, err := amqp.Dial(p.url)

	if err != nil {
		p.logger.Error("rabbitmq dial failed", zap.Error(err))
		return fmt.Errorf("failed to dial broker: %w", err)
	}

	defer conn.Close()

	ch, err := conn.Channel()

	if err != nil {
		p.logger.Error("rabbitmq channel open failed", zap.Error(err))
		return fmt.Errorf("failed to open channel: %w", err)
	}

	defer ch.Close()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		p.logger.Error("rabbitmq queue declare failed", zap.Error(err))
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)

	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", bookingQueueName, false, false, pub); err != nil {
		p.logger.Error("rabbitmq publish failed", zap.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
