// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// SessionsTotal tracks total chat sessions created.
	SessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sessions_total",
			Help: "Total chat sessions created",
		},
	)

	// MessagesTotal tracks total chat messages appended, by author type.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total chat messages appended",
		},
		[]string{"type"},
	)

	// PriceFetchDuration tracks upstream market price query duration.
	PriceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "market_price_fetch_duration_seconds",
			Help:    "Market price query duration",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		},
		[]string{"status"},
	)

	// PriceFetchesTotal tracks market price queries by outcome.
	PriceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_price_fetches_total",
			Help: "Total market price queries",
		},
		[]string{"status"},
	)

	// AlertsTotal tracks wildlife alerts reported, by severity.
	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildlife_alerts_total",
			Help: "Total wildlife alerts reported",
		},
		[]string{"severity"},
	)

	// AlertStreamConnections tracks active alert SSE subscribers.
	AlertStreamConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "alert_stream_connections_active",
			Help: "Number of active alert stream connections",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordPriceFetch records metrics for one market price query.
func RecordPriceFetch(status string, duration float64) {
	PriceFetchDuration.WithLabelValues(status).Observe(duration)
	PriceFetchesTotal.WithLabelValues(status).Inc()
}
