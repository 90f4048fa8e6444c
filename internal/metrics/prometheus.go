package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_published_total",
			Help: "Change events handed to the audit log, by delivery path and result",
		},
		[]string{"path", "result"},
	)

	WorkerProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_messages_processed_total",
			Help: "Total number of audit messages processed by workers",
		},
		[]string{"result"},
	)

	WorkerActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_active_goroutines",
			Help: "Number of active audit worker goroutines",
		},
	)

	QueueDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "queue_depth",
			Help: "Current RabbitMQ queue depth",
		},
		[]string{"queue"},
	)
)

var initOnce sync.Once

// Init registers metrics with Prometheus. Repeated calls are no-ops.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(HTTPRequests, HTTPDuration, EventsPublished, WorkerProcessed, WorkerActive, QueueDepth)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
