// Package metrics exposes Prometheus instruments for availability runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Registry holds every instrument on a private prometheus.Registry so that
// independent evaluators never collide on registration.
type Registry struct {
	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	ProblemSetSize     *prometheus.HistogramVec
	TermsTotal         *prometheus.CounterVec
	TopologyRuns       *prometheus.CounterVec
	TopologyPairs      prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all instruments initialised.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initEvaluationMetrics()
	r.initTopologyMetrics()

	return r
}

// Prometheus returns the underlying registry, e.g. for an HTTP handler or
// a one-shot Gather.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initEvaluationMetrics() {
	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvrbd_evaluations_total",
			Help: "Total number of single-pair availability evaluations",
		},
		[]string{"algorithm", "status"},
	)

	r.EvaluationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvrbd_evaluation_duration_seconds",
			Help:    "Single-pair evaluation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		},
		[]string{"algorithm"},
	)

	r.ProblemSetSize = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvrbd_problem_set_size",
			Help:    "Number of minimal paths or cuts enumerated per evaluation",
			Buckets: []float64{1, 4, 16, 64, 256, 1024, 4096},
		},
		[]string{"algorithm"},
	)

	r.TermsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvrbd_disjoint_terms_total",
			Help: "Total number of disjoint terms or product groups produced",
		},
		[]string{"algorithm"},
	)
}

func (r *Registry) initTopologyMetrics() {
	r.TopologyRuns = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvrbd_topology_runs_total",
			Help: "Total number of all-pairs topology evaluations",
		},
		[]string{"algorithm", "mode", "status"},
	)

	r.TopologyPairs = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvrbd_topology_pairs",
			Help:    "Number of node pairs per topology evaluation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
}
