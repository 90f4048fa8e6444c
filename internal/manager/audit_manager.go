// internal/manager/audit_manager.go
package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"property-management/internal/consumer"
	"property-management/internal/logger"
	"property-management/internal/metrics"
	"property-management/internal/model"
	"property-management/internal/worker"
)

// ErrNotRunning is returned when the audit consumer has not been started,
// typically because no broker is configured.
var ErrNotRunning = errors.New("audit consumer is not running")

// EventStore persists change events.
type EventStore interface {
	InsertAuditEvent(ctx context.Context, e model.Event) error
}

// Broker is the queue the events travel through when RabbitMQ is configured.
type Broker interface {
	DeclareQueues() error
	Publish(ctx context.Context, messageID string, body []byte) error
	QueueName() string
	WatchQueueDepth(ctx context.Context, every time.Duration)
}

// AuditManager routes change events into the audit log, either through the
// broker and a consumer worker pool or straight into the store.
type AuditManager struct {
	store   EventStore
	broker  Broker
	conn    *amqp.Connection
	workers int

	mu       sync.Mutex
	consumer *consumer.Consumer
	pool     *worker.WorkerPool
	cancel   context.CancelFunc
}

// NewAuditManager builds a manager. With a nil broker events are written
// directly to store.
func NewAuditManager(store EventStore, broker Broker, conn *amqp.Connection, workers int) *AuditManager {
	return &AuditManager{
		store:   store,
		broker:  broker,
		conn:    conn,
		workers: workers,
	}
}

// Start declares the queues and spawns the consumer and its workers.
func (am *AuditManager) Start() error {
	if am.broker == nil {
		logger.Default().Info("no message broker configured, audit events are stored directly")
		return nil
	}
	am.mu.Lock()
	defer am.mu.Unlock()
	if am.consumer != nil {
		return nil
	}

	if err := am.broker.DeclareQueues(); err != nil {
		return err
	}

	pool := worker.NewWorkerPool(am.handleMessage, am.workers)
	pool.Start()

	c, err := consumer.StartConsumer(am.conn, am.broker.QueueName(), am.workers*2, pool.Submit)
	if err != nil {
		pool.Stop()
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go am.broker.WatchQueueDepth(ctx, 15*time.Second)

	am.pool, am.consumer, am.cancel = pool, c, cancel
	logger.Default().WithField("workers", am.workers).Info("audit consumer started")
	return nil
}

// Shutdown stops consuming and waits for in-flight events.
func (am *AuditManager) Shutdown() {
	am.mu.Lock()
	defer am.mu.Unlock()
	if am.consumer == nil {
		return
	}
	am.cancel()
	am.consumer.Stop()
	am.pool.Stop()
	am.consumer, am.pool, am.cancel = nil, nil, nil
}

// SetWorkerCount rescales the running worker pool and returns the size it
// settled on.
func (am *AuditManager) SetWorkerCount(n int) (int, error) {
	am.mu.Lock()
	defer am.mu.Unlock()
	if am.pool == nil {
		return 0, ErrNotRunning
	}
	am.pool.SetWorkerCount(n)
	am.workers = am.pool.WorkerCount()
	logger.Default().WithField("workers", am.workers).Info("audit worker pool resized")
	return am.workers, nil
}

// Publish records e. Failures are logged and counted but never returned, the
// mutation it describes is already committed.
func (am *AuditManager) Publish(ctx context.Context, e model.Event) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"entity":   e.Entity,
		"entityID": e.EntityID,
		"action":   e.Action,
	})
	if e.RequestID == "" {
		e.RequestID = logger.RequestIDFromContext(ctx)
	}

	if am.broker != nil {
		body, err := json.Marshal(e)
		if err == nil {
			err = am.broker.Publish(ctx, e.ID.String(), body)
		}
		if err == nil {
			metrics.EventsPublished.WithLabelValues("queue", "ok").Inc()
			return
		}
		metrics.EventsPublished.WithLabelValues("queue", "error").Inc()
		log.WithError(err).Warn("failed to publish change event, storing directly")
	}

	if err := am.store.InsertAuditEvent(ctx, e); err != nil {
		metrics.EventsPublished.WithLabelValues("direct", "error").Inc()
		log.WithError(err).Error("failed to record change event")
		return
	}
	metrics.EventsPublished.WithLabelValues("direct", "ok").Inc()
}

// handleMessage stores one delivered event. Undecodable bodies are rejected.
func (am *AuditManager) handleMessage(ctx context.Context, msg amqp.Delivery) error {
	var e model.Event
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}
	if e.ID == uuid.Nil || e.Entity == "" || e.Action == "" {
		return errors.New("event is missing id, entity or action")
	}
	if err := am.store.InsertAuditEvent(ctx, e); err != nil {
		return fmt.Errorf("store event %s: %w", e.ID, err)
	}
	logger.FromContext(ctx).WithField("eventID", e.ID).Debug("change event recorded")
	return nil
}
