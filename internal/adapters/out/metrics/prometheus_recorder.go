// Package metrics exposes governance decisions as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"governance/internal/core/domain/rules"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomePassed  = "passed"
	OutcomeBlocked = "blocked"
	OutcomeFailed  = "failed"
)

// PrometheusRecorder counts governor decisions and violations per route.
type PrometheusRecorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the governance collectors on a fresh
// registry, together with the Go runtime and process collectors.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Name:      "evaluations_total",
			Help:      "Business rule evaluations by route and outcome.",
		}, []string{"route", "outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governance",
			Name:      "violations_total",
			Help:      "Business rule violations by route, code and severity.",
		}, []string{"route", "code", "severity"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "governance",
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating business rules.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"route"}),
	}

	r.registry.MustRegister(
		r.evaluations,
		r.violations,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveDecision records one completed evaluation.
func (r *PrometheusRecorder) ObserveDecision(route string, result rules.EnforcementResult, elapsed time.Duration) {
	outcome := OutcomePassed
	if result.Blocked {
		outcome = OutcomeBlocked
	}
	r.evaluations.WithLabelValues(route, outcome).Inc()
	r.duration.WithLabelValues(route).Observe(elapsed.Seconds())

	for _, v := range result.Violations() {
		r.violations.WithLabelValues(route, string(v.Code), v.Severity.String()).Inc()
	}
}

// ObserveFailure records an evaluation that could not produce a decision.
func (r *PrometheusRecorder) ObserveFailure(route string) {
	r.evaluations.WithLabelValues(route, OutcomeFailed).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry for additional collectors.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}
