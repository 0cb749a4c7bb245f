package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"policydesk/internal/domain/lifecycle"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "policydesk",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "policydesk",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	quotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "policydesk",
			Subsystem: "quotes",
			Name:      "estimates_total",
			Help:      "Premium estimates computed, by outcome.",
		},
		[]string{"outcome"},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "policydesk",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Lifecycle transitions requested, by kind, edge and outcome.",
		},
		[]string{"kind", "from", "to", "outcome"},
	)

	notices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "policydesk",
			Subsystem: "payments",
			Name:      "due_notices_total",
			Help:      "Payment due notices processed, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, quotes, transitions, notices)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHTTP records request counts and latency per chi route pattern.
func InstrumentHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func RecordQuote(err error) {
	quotes.WithLabelValues(outcome(err)).Inc()
}

func RecordNotice(err error) {
	notices.WithLabelValues(outcome(err)).Inc()
}

// RecordTransition labels rejected transitions with the lifecycle error kind.
func RecordTransition(kind, from, to string, err error) {
	transitions.WithLabelValues(kind, from, to, transitionOutcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func transitionOutcome(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, lifecycle.ErrIllegalTransition):
		return "illegal"
	case errors.Is(err, lifecycle.ErrForbiddenActor):
		return "forbidden"
	case errors.Is(err, lifecycle.ErrNotAssignedAgent):
		return "not_assignee"
	case errors.Is(err, lifecycle.ErrMissingAssignee):
		return "missing_assignee"
	default:
		return "error"
	}
}
