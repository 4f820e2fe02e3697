// Package events publishes booking lifecycle events. Downstream consumers
// (analytics, a future CRM sync) subscribe on NATS; when NATS is not
// configured the no-op publisher keeps the handler wiring unchanged.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/seeeye/area710-booking/pkg/logger"
)

const (
	BookingRequested = "booking.requested"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

// BookingRequestedEvent is emitted after a valid booking request was
// accepted and the notification mails were attempted.
type BookingRequestedEvent struct {
	Email       string    `json:"email"`
	EventType   string    `json:"event_type"`
	EventDate   string    `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Guests      int       `json:"guests"`
	Rooms       []string  `json:"rooms"`
	Lang        string    `json:"lang"`
	RequestedAt time.Time `json:"requested_at"`
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher drops events; used when NATS is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }
