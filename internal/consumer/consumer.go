// internal/consumer/consumer.go
package consumer

import (
	"fmt"

	"github.com/streadway/amqp"

	"property-management/internal/logger"
)

type MessageHandlerFunc func(delivery amqp.Delivery)

// Consumer holds control channels and metadata for a running queue consumer
type Consumer struct {
	QueueName   string
	Channel     *amqp.Channel
	StopChan    chan struct{}
	DoneChan    chan struct{}
	Handler     MessageHandlerFunc
	ConsumerTag string
}

// StartConsumer opens a channel on conn and forwards every delivery of queue
// to handler. prefetch bounds the unacknowledged deliveries in flight.
func StartConsumer(conn *amqp.Connection, queue string, prefetch int, handler MessageHandlerFunc) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("queue %s: failed to open channel: %w", queue, err)
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("queue %s: failed to set qos: %w", queue, err)
	}

	consumerTag := fmt.Sprintf("consumer-%s", queue)
	msgs, err := ch.Consume(
		queue,
		consumerTag,
		false, // autoAck: false to handle manually
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("queue %s: failed to start consuming: %w", queue, err)
	}

	c := newConsumer(queue, consumerTag, handler)
	c.Channel = ch
	go c.consumeLoop(msgs)

	logger.Default().WithField("queue", queue).Info("started consumer")
	return c, nil
}

func newConsumer(queue, tag string, handler MessageHandlerFunc) *Consumer {
	return &Consumer{
		QueueName:   queue,
		StopChan:    make(chan struct{}),
		DoneChan:    make(chan struct{}),
		Handler:     handler,
		ConsumerTag: tag,
	}
}

// consumeLoop processes messages until StopChan is closed
func (c *Consumer) consumeLoop(msgs <-chan amqp.Delivery) {
	defer close(c.DoneChan)
	log := logger.Default().WithField("queue", c.QueueName)

	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				log.Info("delivery channel closed")
				return
			}
			c.Handler(msg)

		case <-c.StopChan:
			log.Info("stopping consumer")
			if c.Channel != nil {
				_ = c.Channel.Cancel(c.ConsumerTag, false)
			}
			return
		}
	}
}

// Stop signals the consumer to stop and waits for cleanup
func (c *Consumer) Stop() {
	close(c.StopChan)
	<-c.DoneChan
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	logger.Default().WithField("queue", c.QueueName).Info("stopped consumer")
}
