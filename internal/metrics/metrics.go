// Package metrics holds the Prometheus collectors of the service. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	bookingsTotal *prometheus.CounterVec
	bookingStatus *prometheus.CounterVec
	reviewsTotal  *prometheus.CounterVec
	seedRuns      *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry, so
// several instances can coexist in one process (tests).
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_created_total",
				Help:      "Count of bookings created by initial status.",
			},
			[]string{"status"},
		),
		bookingStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_status_changed_total",
				Help:      "Count of booking status changes by new status.",
			},
			[]string{"status"},
		),
		reviewsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "review_submitted_total",
				Help:      "Count of reviews submitted by rating.",
			},
			[]string{"rating"},
		),
		seedRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seed_runs_total",
				Help:      "Count of seed requests by outcome.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingsTotal,
		m.bookingStatus,
		m.reviewsTotal,
		m.seedRuns,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) IncBookingCreated(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) IncBookingStatusChanged(status string) {
	if m == nil {
		return
	}
	m.bookingStatus.WithLabelValues(status).Inc()
}

func (m *Metrics) IncReviewSubmitted(rating int) {
	if m == nil {
		return
	}
	m.reviewsTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
}

// Seed outcomes
const (
	SeedInserted = "inserted"
	SeedSkipped  = "skipped"
	SeedFailed   = "failed"
)

func (m *Metrics) IncSeed(result string) {
	if m == nil {
		return
	}
	m.seedRuns.WithLabelValues(result).Inc()
}
