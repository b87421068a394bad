// Package rabbitmq publishes domain events to a durable queue and consumes
// them in the notifier worker.
package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names derived from the main event queue.
func retryQueue(queue string) string { return queue + ".retry" }
func deadQueue(queue string) string  { return queue + ".dlq" }

// declareTopology declares the main queue, its retry queue and its dead
// letter queue. Rejected messages on the main queue go to the DLQ; messages
// on the retry queue return to the main queue once their TTL expires.
func declareTopology(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(deadQueue(queue), true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare %s: %w", deadQueue(queue), err)
	}

	if _, err := ch.QueueDeclare(retryQueue(queue), true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": queue,
	}); err != nil {
		return fmt.Errorf("declare %s: %w", retryQueue(queue), err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": deadQueue(queue),
	}); err != nil {
		return fmt.Errorf("declare %s: %w", queue, err)
	}

	return nil
}

// dial opens a connection and a channel with the topology declared.
func dial(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := declareTopology(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	return conn, ch, nil
}
