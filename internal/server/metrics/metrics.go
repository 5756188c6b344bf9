// Package metrics collects and exposes Prometheus metrics for the auth flow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records counters for the credential endpoints and per-request
// latency for the HTTP middleware.
type Collector struct {
	loginAttempts   *prometheus.CounterVec
	registrations   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authcore_login_attempts_total",
			Help: "Login attempts by outcome (success, invalid_credentials, error).",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authcore_registrations_total",
			Help: "Successful account registrations.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "authcore_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status_code"}),
	}

	reg.MustRegister(
		c.loginAttempts,
		c.registrations,
		c.requestDuration,
	)

	return c
}

// RecordLoginAttempt counts one login attempt with the given outcome.
func (c *Collector) RecordLoginAttempt(outcome string) {
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

// RecordRegistration counts one successful registration.
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordRequest observes one request's latency.
func (c *Collector) RecordRequest(route string, statusCode int, duration time.Duration) {
	c.requestDuration.WithLabelValues(route, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
