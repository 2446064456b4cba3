// Package service holds application services that sit between the HTTP
// handlers and the listings store or the message broker.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/land-marketplace/internal/log"
	q "github.com/iliyamo/land-marketplace/internal/queue"
)

// Publisher sends domain events to RabbitMQ.  Each publish dials its own
// connection, so a broker outage only affects the publish in flight.
// Errors are logged and returned; callers treat publishing as best effort.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// PublishVisitRequested publishes ev to the visit.requested queue.
func (p *Publisher) PublishVisitRequested(ctx context.Context, ev q.VisitRequestedEvent) error {
	return p.publish(ctx, q.VisitRequestedQueue, ev)
}

// PublishContactSubmitted publishes ev to the contact.submitted queue.
func (p *Publisher) PublishContactSubmitted(ctx context.Context, ev q.ContactSubmittedEvent) error {
	return p.publish(ctx, q.ContactSubmittedQueue, ev)
}

func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	logger := log.Log().WithField("queue", queue)

	body, err := json.Marshal(event)
	if err != nil {
		logger.WithError(err).Error("marshal event failed")
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(3 * time.Second)})
	if err != nil {
		logger.WithError(err).Warn("rabbitmq dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Warn("rabbitmq channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		logger.WithError(err).Warn("rabbitmq queue declare failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		logger.WithError(err).Warn("rabbitmq publish failed")
		return err
	}
	return nil
}
