package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/land-marketplace/internal/log"
)

const (
	visitLogFile   = "visits.log"
	contactLogFile = "contact.log"

	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// Consumer drains the visit and contact queues and appends one line per
// event to <LogDir>/visits.log and <LogDir>/contact.log.
type Consumer struct {
	URL    string
	LogDir string
}

// NewConsumer returns a Consumer for the broker at url writing into logDir.
func NewConsumer(url, logDir string) *Consumer {
	if logDir == "" {
		logDir = "logs"
	}
	return &Consumer{URL: url, LogDir: logDir}
}

// Run connects to the broker and consumes until ctx is cancelled.  Lost
// connections are re-dialed with exponential backoff from 1s up to 30s.
// It returns ctx.Err() on shutdown.
func (c *Consumer) Run(ctx context.Context) error {
	logger := log.Log().WithField("component", "event-consumer")
	backoff := minBackoff
	for {
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			logger.WithError(err).WithField("retry_in", backoff.String()).Warn("failed to dial broker")
			if !sleepCtx(ctx, backoff) {
				return ctx.Err()
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = minBackoff

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.WithError(err).Warn("consume loop ended, reconnecting")
		if !sleepCtx(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Log().WithError(err).Warn("set QoS failed")
	}

	visits, err := consume(ch, VisitRequestedQueue)
	if err != nil {
		return err
	}
	contacts, err := consume(ch, ContactSubmittedQueue)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-visits:
			if !ok {
				return errors.New("visit deliveries channel closed")
			}
			c.settle(d, c.HandleVisit(d.Body))
		case d, ok := <-contacts:
			if !ok {
				return errors.New("contact deliveries channel closed")
			}
			c.settle(d, c.HandleContact(d.Body))
		}
	}
}

func consume(ch *amqp.Channel, queue string) (<-chan amqp.Delivery, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("queue declare %s: %w", queue, err)
	}
	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("queue consume %s: %w", queue, err)
	}
	return msgs, nil
}

func (c *Consumer) settle(d amqp.Delivery, err error) {
	if err != nil {
		log.Log().WithField("queue", d.RoutingKey).WithError(err).Error("handle message failed")
		_ = d.Nack(false, false) // do not requeue poison messages
		return
	}
	_ = d.Ack(false)
}

// HandleVisit decodes a VisitRequestedEvent and appends it to the visit log.
func (c *Consumer) HandleVisit(body []byte) error {
	var ev VisitRequestedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return c.appendLine(visitLogFile, FormatVisit(ev))
}

// HandleContact decodes a ContactSubmittedEvent and appends it to the
// contact log.
func (c *Consumer) HandleContact(body []byte) error {
	var ev ContactSubmittedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return c.appendLine(contactLogFile, FormatContact(ev))
}

// FormatVisit renders ev as a single log line.
func FormatVisit(ev VisitRequestedEvent) string {
	return fmt.Sprintf("[%s] Visit requested | listing_id=%s | listing=%s | owner=%s | visitor=%s | phone=%s | email=%s | when=%s %s | message=%s\n",
		ev.RequestedAt, ev.ListingID, strconv.Quote(ev.ListingTitle), strconv.Quote(ev.OwnerName),
		strconv.Quote(ev.VisitorName), strconv.Quote(ev.VisitorPhone), strconv.Quote(ev.VisitorEmail),
		strconv.Quote(ev.PreferredDate), strconv.Quote(ev.PreferredTime),
		strconv.Quote(ev.Message))
}

// FormatContact renders ev as a single log line.
func FormatContact(ev ContactSubmittedEvent) string {
	return fmt.Sprintf("[%s] Contact submitted | subject=%s | name=%s | email=%s | phone=%s | message=%s\n",
		ev.SubmittedAt, strconv.Quote(ev.Subject), strconv.Quote(ev.Name), strconv.Quote(ev.Email),
		strconv.Quote(ev.Phone), strconv.Quote(ev.Message))
}

func (c *Consumer) appendLine(name, line string) error {
	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.LogDir, err)
	}
	f, err := os.OpenFile(filepath.Join(c.LogDir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// sleepCtx waits for d and reports false if ctx was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
