package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "empire"
	subsystem = "dashboard"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// UpstreamCallsTotal counts calls to external services by upstream,
	// operation and outcome (ok or error).
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "upstream_calls_total",
			Help:      "Total number of outbound upstream calls.",
		},
		[]string{"upstream", "operation", "outcome"},
	)

	// DeploymentsTotal counts deployment records by final status.
	DeploymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deployments_total",
			Help:      "Total number of deployments by status.",
		},
		[]string{"status"},
	)

	// CommandRunsTotal counts analyzed and executed terminal commands by
	// safety level and whether execution was allowed.
	CommandRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "command_runs_total",
			Help:      "Total number of command executions by safety level and result.",
		},
		[]string{"safety", "allowed"},
	)
)

// ObserveUpstream records one outbound call result.
func ObserveUpstream(upstream, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UpstreamCallsTotal.WithLabelValues(upstream, operation, outcome).Inc()
}
