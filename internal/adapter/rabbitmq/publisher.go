package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const publishTimeout = 5 * time.Second

// Publisher sends domain events to the event queue as persistent JSON messages.
type Publisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewPublisher connects to the broker and declares the queue topology.
func NewPublisher(url, queue string) (*Publisher, error) {
	conn, ch, err := dial(url, queue)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

// Publish sends one event through the default exchange.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	msg, err := toPublishing(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func toPublishing(event domain.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode event %s: %w", event.ID, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// LogPublisher stands in for the broker when none is configured: events are
// written to the log and dropped.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{log: logger.With("adapter", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.log.DebugContext(ctx, "event dropped, no broker configured",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
	)
	return nil
}
