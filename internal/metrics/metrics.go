// Package metrics exposes Prometheus collectors for evaluations and HTTP
// traffic. Password text never becomes a label value.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fernandezvara/passmeter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered for one process.
type Metrics struct {
	registry *prometheus.Registry

	Evaluations     *prometheus.CounterVec
	Penalties       *prometheus.CounterVec
	Scores          prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Evaluations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passmeter_evaluations_total",
				Help: "Total number of password evaluations by resulting strength",
			},
			[]string{"strength"},
		),
		Penalties: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passmeter_penalties_total",
				Help: "Total number of penalties applied by rule",
			},
			[]string{"rule"},
		),
		Scores: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "passmeter_score",
			Help:    "Distribution of final scores",
			Buckets: prometheus.LinearBuckets(0, 1, 7),
		}),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "passmeter_http_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"route", "status"},
		),
	}
}

// ObserveResult records one evaluation outcome.
func (m *Metrics) ObserveResult(r passmeter.Result) {
	if m == nil {
		return
	}
	label := r.Strength.Class()
	if label == "" {
		label = "unrated"
	}
	m.Evaluations.WithLabelValues(label).Inc()
	for _, rule := range r.Penalties {
		m.Penalties.WithLabelValues(rule).Inc()
	}
	m.Scores.Observe(float64(r.Score))
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
