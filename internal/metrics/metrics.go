// Package metrics exposes Prometheus collectors for the audit service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	auditsTotal                *prometheus.CounterVec
	decodeTotal                *prometheus.CounterVec
	checkStatusTotal           *prometheus.CounterVec
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		auditsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seolint_audits_total",
				Help: "Total number of audits performed, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		decodeTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seolint_decode_total",
				Help: "Total number of documents decoded, labeled by resolution stage.",
			},
			[]string{"stage"},
		)

		checkStatusTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seolint_check_status_total",
				Help: "Total check results, labeled by check name and status.",
			},
			[]string{"check", "status"},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveAudit increments the audit outcome counter.
func ObserveAudit(outcome string) {
	auditsTotal.WithLabelValues(outcome).Inc()
}

// ObserveDecode records the encoding resolution stage of one document.
func ObserveDecode(stage string) {
	decodeTotal.WithLabelValues(stage).Inc()
}

// ObserveCheck records the status of one field check.
func ObserveCheck(check, status string) {
	checkStatusTotal.WithLabelValues(check, status).Inc()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
