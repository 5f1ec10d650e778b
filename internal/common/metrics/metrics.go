package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	otpDispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "auth",
			Name:      "otp_dispatches_total",
			Help:      "One-time codes sent through Telegram, by realm and outcome.",
		},
		[]string{"realm", "result"},
	)

	sessionsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "auth",
			Name:      "sessions_issued_total",
			Help:      "Session tokens minted, by realm and login method.",
		},
		[]string{"realm", "method"},
	)

	allocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "pool",
			Name:      "allocations_total",
			Help:      "Address allocation attempts, by entry point and outcome.",
		},
		[]string{"entry", "result"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, otpDispatches, sessionsIssued, allocations)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveOTP(realm, result string) {
	otpDispatches.WithLabelValues(realm, result).Inc()
}

func ObserveSession(realm, method string) {
	sessionsIssued.WithLabelValues(realm, method).Inc()
}

func ObserveAllocation(entry, result string) {
	allocations.WithLabelValues(entry, result).Inc()
}
