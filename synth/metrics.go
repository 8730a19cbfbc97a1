package synth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/fcafm/fm"
)

// Metrics holds the Prometheus collectors of synthesis runs.
type Metrics struct {
	// Registry gathers every collector below.
	Registry *prometheus.Registry

	runs           *prometheus.CounterVec   // by result (ok/error)
	phaseDuration  *prometheus.HistogramVec // by phase
	configurations prometheus.Gauge
	concepts       prometheus.Gauge
	edges          *prometheus.GaugeVec   // by kind (tree/cross_tree)
	nodes          *prometheus.CounterVec // by search (exact/fallback)
	constraints    *prometheus.CounterVec // by kind (implies/excludes)
	features       *prometheus.GaugeVec   // by kind (abstract/unused)
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fmsynth",
			Name:      "runs_total",
			Help:      "Total number of synthesis runs",
		}, []string{"result"}),

		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fmsynth",
			Name:      "phase_duration_seconds",
			Help:      "Duration of each pipeline phase in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"phase"}),

		configurations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fmsynth",
			Name:      "configurations",
			Help:      "Number of input configurations of the last run",
		}),

		concepts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fmsynth",
			Name:      "concepts",
			Help:      "Number of attribute-concepts of the last run",
		}),

		edges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fmsynth",
			Name:      "poset_edges",
			Help:      "Reduced AC-poset edges of the last run",
		}, []string{"kind"}),

		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fmsynth",
			Name:      "group_nodes_total",
			Help:      "Tree nodes whose child groups were computed, by search",
		}, []string{"search"}),

		constraints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fmsynth",
			Name:      "constraints_total",
			Help:      "Cross-tree constraints emitted, by kind",
		}, []string{"kind"}),

		features: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fmsynth",
			Name:      "synthetic_features",
			Help:      "Abstract and unused-placeholder features of the last run",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{
		m.runs, m.phaseDuration, m.configurations, m.concepts,
		m.edges, m.nodes, m.constraints, m.features,
	} {
		if err := m.Registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// WriteFile writes every gathered metric to path in the Prometheus text
// format, replacing the file atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

func (m *Metrics) observePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (m *Metrics) recordRun(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.runs.WithLabelValues(result).Inc()
}

func (m *Metrics) recordModel(configs int, s fm.Stats) {
	if m == nil {
		return
	}
	m.configurations.Set(float64(configs))
	m.concepts.Set(float64(s.Concepts))
	m.edges.WithLabelValues("tree").Set(float64(s.TreeEdges))
	m.edges.WithLabelValues("cross_tree").Set(float64(s.CrossTreeEdges))
	m.nodes.WithLabelValues("exact").Add(float64(s.ExactNodes))
	m.nodes.WithLabelValues("fallback").Add(float64(s.FallbackNodes))
	m.constraints.WithLabelValues("implies").Add(float64(s.ImpliesConstraints))
	m.constraints.WithLabelValues("excludes").Add(float64(s.ExclusiveConstraints))
	m.features.WithLabelValues("abstract").Set(float64(s.AbstractFeatures))
	m.features.WithLabelValues("unused").Set(float64(s.UnusedFeatures))
}
