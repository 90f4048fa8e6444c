// internal/messaging/rabbit.go
package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"property-management/internal/logger"
	"property-management/internal/metrics"
)

type RabbitClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	URL     string

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewRabbitClient(url, queue string) (*RabbitClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return &RabbitClient{
		conn:    conn,
		channel: ch,
		queue:   queue,
		URL:     url,
	}, nil
}

func (r *RabbitClient) GetConnection() *amqp.Connection {
	return r.conn
}

func (r *RabbitClient) QueueName() string {
	return r.queue
}

// DeadLetterQueueName is where rejected deliveries end up.
func DeadLetterQueueName(queue string) string {
	return queue + "_dlq"
}

// DeclareQueues creates the durable event queue and its dead letter queue.
func (r *RabbitClient) DeclareQueues() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dlqName := DeadLetterQueueName(r.queue)
	if _, err := r.channel.QueueDeclare(dlqName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}
	if _, err := r.channel.QueueDeclare(r.queue, true, false, false, false, args); err != nil {
		return fmt.Errorf("declare main queue: %w", err)
	}

	logger.Default().WithField("queue", r.queue).Info("event queues declared")
	return nil
}

// Publish sends a persistent message to the event queue.
func (r *RabbitClient) Publish(ctx context.Context, messageID string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.channel.Publish(
		"",      // default exchange
		r.queue, // routing key (queue name)
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     messageID,
			CorrelationId: logger.RequestIDFromContext(ctx),
			Timestamp:     time.Now().UTC(),
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", r.queue, err)
	}
	return nil
}

// Close cleans up connection and channel
func (r *RabbitClient) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	return r.conn.Close()
}

func (r *RabbitClient) UpdateQueueDepth() {
	r.mu.Lock()
	q, err := r.channel.QueueInspect(r.queue)
	r.mu.Unlock()
	if err != nil {
		logger.Default().WithError(err).WithField("queue", r.queue).Warn("failed to inspect queue")
		return
	}
	metrics.QueueDepth.WithLabelValues(r.queue).Set(float64(q.Messages))
}

// WatchQueueDepth refreshes the queue depth gauge until ctx is done.
func (r *RabbitClient) WatchQueueDepth(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.UpdateQueueDepth()
		}
	}
}

