package worker

import (
	"context"
	"sync"

	"github.com/streadway/amqp"

	"property-management/internal/logger"
	"property-management/internal/metrics"
)

// Handler processes one delivery. A returned error rejects the delivery
// without requeue, sending it to the dead letter queue.
type Handler func(ctx context.Context, msg amqp.Delivery) error

type WorkerPool struct {
	handler Handler

	mu      sync.RWMutex
	jobs    chan amqp.Delivery
	wg      sync.WaitGroup
	workers int
	running bool
}

func NewWorkerPool(handler Handler, workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &WorkerPool{handler: handler, workers: workerCount}
}

// Start launches the workers. Calling Start on a running pool does nothing.
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.running {
		return
	}
	wp.jobs = make(chan amqp.Delivery, wp.workers)
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.run(wp.jobs)
	}
	wp.running = true
	logger.Default().WithField("workers", wp.workers).Info("worker pool started")
}

func (wp *WorkerPool) run(jobs <-chan amqp.Delivery) {
	defer wp.wg.Done()
	metrics.WorkerActive.Inc()
	defer metrics.WorkerActive.Dec()

	for msg := range jobs {
		ctx, log := logger.ContextWithRequestID(context.Background(), msg.CorrelationId)
		if err := wp.handler(ctx, msg); err != nil {
			log.WithError(err).WithField("messageID", msg.MessageId).Warn("failed to process message, sending to DLQ")
			_ = msg.Reject(false)
			metrics.WorkerProcessed.WithLabelValues("rejected").Inc()
			continue
		}
		if err := msg.Ack(false); err != nil {
			log.WithError(err).Warn("ack failed")
		}
		metrics.WorkerProcessed.WithLabelValues("ok").Inc()
	}
}

// Submit hands a delivery to the next free worker, blocking while all are busy.
func (wp *WorkerPool) Submit(msg amqp.Delivery) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.jobs == nil {
		_ = msg.Nack(false, true)
		return
	}
	wp.jobs <- msg
}

// Stop drains queued deliveries and waits for the workers to exit.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	if !wp.running {
		wp.mu.Unlock()
		return
	}
	close(wp.jobs)
	wp.jobs = nil
	wp.running = false
	wp.mu.Unlock()

	wp.wg.Wait()
	logger.Default().Info("worker pool stopped")
}

func (wp *WorkerPool) WorkerCount() int {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.workers
}

// SetWorkerCount updates the worker pool to use a new concurrency level
func (wp *WorkerPool) SetWorkerCount(n int) {
	wp.mu.Lock()
	if n <= 0 || n == wp.workers {
		wp.mu.Unlock()
		return
	}
	logger.Default().Infof("rescaling worker pool: %d -> %d", wp.workers, n)
	wasRunning := wp.running
	wp.mu.Unlock()

	wp.Stop()

	wp.mu.Lock()
	wp.workers = n
	wp.mu.Unlock()
	if wasRunning {
		wp.Start()
	}
}
