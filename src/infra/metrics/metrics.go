// Package metrics exposes Prometheus collectors for the HTTP surface and
// the scoring engine. Collectors are registered once via promauto on the
// default registry and recorded through small helper functions so callers
// never touch prometheus types directly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "survivordraft"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	scoreComputations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scoring",
		Name:      "computations_total",
		Help:      "Leaderboard computations performed.",
	})

	picksSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "picks",
		Name:      "saves_total",
		Help:      "Prediction sets saved.",
	})
)

// RecordHTTPRequest counts one served request.
func RecordHTTPRequest(route, method, status string) {
	httpRequests.WithLabelValues(route, method, status).Inc()
}

// ObserveHTTPDuration records the latency of one request in seconds.
func ObserveHTTPDuration(route, method string, seconds float64) {
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordScoreComputation counts one leaderboard computation.
func RecordScoreComputation() {
	scoreComputations.Inc()
}

// RecordPicksSaved counts one saved prediction set.
func RecordPicksSaved() {
	picksSaved.Inc()
}
