// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/fritter-backend/internal/domain"
)

const namespace = "fritter"

var (
	// HTTPRequests counts handled requests.
	// Labels: route (chi pattern), method, status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// HTTPDuration measures request latency.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	// HTTPPanics counts handler panics turned into 500 responses.
	HTTPPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "panics_recovered_total",
		Help:      "Handler panics recovered by the HTTP middleware",
	})

	// CreditExchanges counts credit exchanges.
	// Labels: outcome (see Outcome)
	CreditExchanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "credit",
		Name:      "exchanges_total",
		Help:      "Total credit exchanges by outcome",
	}, []string{"outcome"})

	// ScheduledOps counts scheduled freet mutations.
	// Labels: op (create, update, delete), outcome
	ScheduledOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduled",
		Name:      "operations_total",
		Help:      "Total scheduled freet operations by op and outcome",
	}, []string{"op", "outcome"})

	// ReflectionOps counts reflection mutations.
	// Labels: op (create, update, delete), outcome
	ReflectionOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reflection",
		Name:      "operations_total",
		Help:      "Total reflection operations by op and outcome",
	}, []string{"op", "outcome"})
)

// Outcome collapses an operation error into a low-cardinality label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return "denied"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrSelfReference):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
