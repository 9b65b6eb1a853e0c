package http

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	roundTripperPrometheusMetrics sync.Once

	roundTripperRequestsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gor",
			Subsystem: "http",
			Name:      "round_tripper_requests_duration_seconds",
			Help:      "Amount of time spent per HTTP request, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 18),
		},
		[]string{"name", "code", "method"})
	roundTripperRequestsInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "gor",
			Subsystem: "http",
			Name:      "round_tripper_requests_in_flight",
			Help:      "Number of HTTP requests currently in flight.",
		},
		[]string{"name"})
)

// NewMetricsRoundTripper creates an adapter for http.RoundTripper that
// adds basic instrumentation in the form of Prometheus metrics.
func NewMetricsRoundTripper(base http.RoundTripper, name string) http.RoundTripper {
	roundTripperPrometheusMetrics.Do(func() {
		prometheus.MustRegister(roundTripperRequestsDurationSeconds)
		prometheus.MustRegister(roundTripperRequestsInFlight)
	})

	return promhttp.InstrumentRoundTripperInFlight(
		roundTripperRequestsInFlight.WithLabelValues(name),
		promhttp.InstrumentRoundTripperDuration(
			roundTripperRequestsDurationSeconds.MustCurryWith(prometheus.Labels{"name": name}),
			base))
}
