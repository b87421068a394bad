package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	attemptsHeader = "x-attempts"
	maxAttempts    = 3
	retryDelay     = 5 * time.Second
)

// Handler processes one event. A returned error schedules a retry.
type Handler func(ctx context.Context, event domain.Event) error

// Consumer reads events from the queue with a fixed number of workers.
type Consumer struct {
	log      *slog.Logger
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	workers  int
	retry    func(ctx context.Context, msg amqp.Publishing) error
	maxTries int
}

// NewConsumer connects to the broker, declares the topology and sets QoS
// to the number of workers.
func NewConsumer(logger *slog.Logger, url, queue string, workers int) (*Consumer, error) {
	if workers <= 0 {
		workers = 1
	}

	conn, ch, err := dial(url, queue)
	if err != nil {
		return nil, err
	}

	if err := ch.Qos(workers, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq qos: %w", err)
	}

	c := &Consumer{
		log:      logger.With("adapter", "rabbitmq_consumer"),
		conn:     conn,
		ch:       ch,
		queue:    queue,
		workers:  workers,
		maxTries: maxAttempts,
	}
	c.retry = func(ctx context.Context, msg amqp.Publishing) error {
		return c.ch.PublishWithContext(ctx, "", retryQueue(c.queue), false, false, msg)
	}
	return c, nil
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq consume: %w", err)
	}

	c.log.InfoContext(ctx, "consumer started",
		slog.String("queue", c.queue),
		slog.Int("workers", c.workers),
	)

	g, gctx := errgroup.WithContext(ctx)
	for range c.workers {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case d, ok := <-deliveries:
					if !ok {
						return nil
					}
					c.process(gctx, d, handle)
				}
			}
		})
	}

	return g.Wait()
}

// Close closes the channel and the connection.
func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// process handles one delivery. Undecodable messages go straight to the DLQ.
// Failed ones are republished to the retry queue until maxTries is reached.
func (c *Consumer) process(ctx context.Context, d amqp.Delivery, handle Handler) {
	var event domain.Event
	if err := json.Unmarshal(d.Body, &event); err != nil || event.Type == "" {
		c.log.WarnContext(ctx, "undecodable message rejected",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)
		_ = d.Nack(false, false)
		return
	}

	start := time.Now()
	err := handle(ctx, event)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			c.log.ErrorContext(ctx, "ack failed",
				slog.String("event_id", event.ID),
				slog.String("error", ackErr.Error()),
			)
		}
		return
	}

	attempt := attemptsOf(d) + 1
	c.log.WarnContext(ctx, "event handler failed",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.Int("attempt", attempt),
		slog.Duration("duration", time.Since(start)),
		slog.String("error", err.Error()),
	)

	if attempt >= c.maxTries {
		_ = d.Nack(false, false)
		return
	}

	retry := amqp.Publishing{
		ContentType:  d.ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    d.MessageId,
		Type:         d.Type,
		Timestamp:    d.Timestamp,
		Expiration:   strconv.FormatInt(retryDelay.Milliseconds(), 10),
		Headers:      amqp.Table{attemptsHeader: int32(attempt)},
		Body:         d.Body,
	}
	if err := c.retry(ctx, retry); err != nil {
		c.log.ErrorContext(ctx, "retry publish failed, dead-lettering",
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()),
		)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func attemptsOf(d amqp.Delivery) int {
	switch v := d.Headers[attemptsHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}
