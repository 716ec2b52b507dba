package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

const namespace = "crowdfund"

// PrometheusMetrics implements core.Metrics with prometheus collectors on a private registry
type PrometheusMetrics struct {
	registry            *prometheus.Registry
	contributions       *prometheus.CounterVec
	contributionAmounts *prometheus.CounterVec
	withdrawals         prometheus.Counter
	refunds             *prometheus.CounterVec
	failures            *prometheus.CounterVec
	conflictRetries     *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpLatency         *prometheus.HistogramVec
}

var _ core.Metrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates and registers the collectors, plus the Go runtime and process collectors
func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		contributions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributions_total",
			Help:      "Accepted contributions by transaction type.",
		}, []string{"type"}),
		contributionAmounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contribution_amount_sum",
			Help:      "Sum of accepted contribution amounts by transaction type. Approximate; the ledger is authoritative.",
		}, []string{"type"}),
		withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Successful creator withdrawals.",
		}),
		refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_processed_total",
			Help:      "Processed refund requests by outcome.",
		}, []string{"outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_failures_total",
			Help:      "Rejected funding engine operations by operation and error kind.",
		}, []string{"operation", "kind"}),
		conflictRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_conflict_retries_total",
			Help:      "Operations re-run after a store serialization conflict.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Served HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.contributions,
		m.contributionAmounts,
		m.withdrawals,
		m.refunds,
		m.failures,
		m.conflictRetries,
		m.httpRequests,
		m.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PrometheusMetrics) ContributionRecorded(transactionType string, amount float64) {
	m.contributions.WithLabelValues(transactionType).Inc()
	if amount > 0 {
		m.contributionAmounts.WithLabelValues(transactionType).Add(amount)
	}
}

func (m *PrometheusMetrics) WithdrawalCompleted() {
	m.withdrawals.Inc()
}

func (m *PrometheusMetrics) RefundProcessed(outcome string) {
	m.refunds.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) OperationFailed(operation, kind string) {
	m.failures.WithLabelValues(operation, kind).Inc()
}

func (m *PrometheusMetrics) ConflictRetried(operation string) {
	m.conflictRetries.WithLabelValues(operation).Inc()
}

// HTTPRequest observes one request. route is the matched route template, never the raw path.
func (m *PrometheusMetrics) HTTPRequest(method, route string, status int, latency time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}
