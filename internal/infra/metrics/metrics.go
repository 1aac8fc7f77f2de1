// Package metrics holds the Prometheus collectors shared across the process.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	delegations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arr_delegations_total",
			Help: "Delegations from the supervisor to specialists by tag and outcome",
		},
		[]string{"tag", "outcome"},
	)

	delegationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arr_delegation_duration_seconds",
			Help:    "Duration of specialist delegations",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{"tag"},
	)

	toolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arr_tool_calls_total",
			Help: "Tool calls executed by agents and the MCP server by tool and outcome",
		},
		[]string{"tool", "outcome"},
	)

	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arr_backend_requests_total",
			Help: "REST requests to wrapped services by service and HTTP status",
		},
		[]string{"service", "status"},
	)

	backendLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arr_backend_request_duration_seconds",
			Help:    "Latency of REST requests to wrapped services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arr_run_duration_seconds",
			Help:    "Duration of top-level supervisor runs by channel and outcome",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
		},
		[]string{"channel", "outcome"},
	)
)

// Outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

// ObserveDelegation records one finished delegation.
func ObserveDelegation(tag, outcome string, d time.Duration) {
	delegations.WithLabelValues(tag, outcome).Inc()
	delegationDuration.WithLabelValues(tag).Observe(d.Seconds())
}

// ObserveToolCall records one finished tool call.
func ObserveToolCall(tool, outcome string) {
	toolCalls.WithLabelValues(tool, outcome).Inc()
}

// ObserveBackend records one backend REST request. status 0 means transport failure.
func ObserveBackend(service string, status int, d time.Duration) {
	backendRequests.WithLabelValues(service, strconv.Itoa(status)).Inc()
	backendLatency.WithLabelValues(service).Observe(d.Seconds())
}

// ObserveRun records one finished top-level run.
func ObserveRun(channel, outcome string, d time.Duration) {
	runDuration.WithLabelValues(channel, outcome).Observe(d.Seconds())
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
