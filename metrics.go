package semanticscholar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// clientMetrics holds the Prometheus instruments for API calls. Metrics are
// registered only when the caller supplies a Registerer in Config; a nil
// clientMetrics disables collection entirely.
type clientMetrics struct {
	// requestsTotal counts request attempts by operation and outcome
	// (success, transport_error, api_error, parse_error, empty).
	requestsTotal *prometheus.CounterVec

	// retriesTotal counts retry waits by operation.
	retriesTotal *prometheus.CounterVec

	// requestDuration observes per-attempt duration in seconds by operation.
	requestDuration *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	factory := promauto.With(reg)
	return &clientMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semanticscholar",
			Name:      "requests_total",
			Help:      "Request attempts to the Semantic Scholar API by operation and outcome.",
		}, []string{"operation", "outcome"}),
		retriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semanticscholar",
			Name:      "retries_total",
			Help:      "Retry waits by operation.",
		}, []string{"operation"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "semanticscholar",
			Name:      "request_duration_seconds",
			Help:      "Duration of individual request attempts in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *clientMetrics) observeAttempt(op string, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(op, outcome).Inc()
	m.requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *clientMetrics) observeRetry(op string) {
	if m == nil {
		return
	}
	m.retriesTotal.WithLabelValues(op).Inc()
}
