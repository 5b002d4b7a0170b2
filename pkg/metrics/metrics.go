package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "travel_assistant"

// Dispatch collects per-query dispatch metrics. A nil *Dispatch is a no-op.
type Dispatch struct {
	queries         *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	persistFailures prometheus.Counter
}

// NewDispatch creates and registers the dispatch collectors on reg.
func NewDispatch(reg prometheus.Registerer) *Dispatch {
	d := &Dispatch{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of processed queries",
			},
			[]string{"agent", "matched", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "End-to-end query handling duration",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 45, 90},
			},
			[]string{"agent"},
		),
		persistFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "turn_persist_failures_total",
				Help:      "Conversation turns that could not be persisted",
			},
		),
	}
	reg.MustRegister(d.queries, d.duration, d.persistFailures)
	return d
}

// ObserveQuery records one processed query.
func (d *Dispatch) ObserveQuery(agent string, matched, success bool, elapsed time.Duration) {
	if d == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "degraded"
	}
	d.queries.WithLabelValues(agent, strconv.FormatBool(matched), outcome).Inc()
	d.duration.WithLabelValues(agent).Observe(elapsed.Seconds())
}

// PersistFailed records a failed conversation append.
func (d *Dispatch) PersistFailed() {
	if d == nil {
		return
	}
	d.persistFailures.Inc()
}

// HTTP collects request metrics for the API server. A nil *HTTP is a no-op.
type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	limited  prometheus.Counter
}

// NewHTTP creates and registers the HTTP collectors on reg.
func NewHTTP(reg prometheus.Registerer) *HTTP {
	h := &HTTP{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		limited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
	}
	reg.MustRegister(h.requests, h.duration, h.limited)
	return h
}

// ObserveRequest records one HTTP request.
func (h *HTTP) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if h == nil {
		return
	}
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RateLimited records a rejected request.
func (h *HTTP) RateLimited() {
	if h == nil {
		return
	}
	h.limited.Inc()
}
