package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/messengers/dijkstra"
)

// runMetrics is a per-run registry written once as a Prometheus textfile,
// for node_exporter's textfile collector.
type runMetrics struct {
	reg *prometheus.Registry

	runs          *prometheus.CounterVec
	cities        prometheus.Gauge
	roads         prometheus.Gauge
	reachable     prometheus.Gauge
	coverage      prometheus.Gauge
	solveDuration prometheus.Histogram
}

func newRunMetrics() *runMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &runMetrics{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "messengers_runs_total",
			Help: "Runs of the messengers solver by outcome.",
		}, []string{"outcome"}),
		cities: f.NewGauge(prometheus.GaugeOpts{
			Name: "messengers_cities",
			Help: "Number of cities in the empire.",
		}),
		roads: f.NewGauge(prometheus.GaugeOpts{
			Name: "messengers_roads",
			Help: "Number of direct roads between distinct cities.",
		}),
		reachable: f.NewGauge(prometheus.GaugeOpts{
			Name: "messengers_reachable_cities",
			Help: "Cities the messengers reach, source included.",
		}),
		coverage: f.NewGauge(prometheus.GaugeOpts{
			Name: "messengers_coverage_time",
			Help: "Time by which every reachable city has been informed.",
		}),
		solveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "messengers_solve_duration_seconds",
			Help:    "Wall time of the shortest-path computation.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// observe records a finished solve.
func (m *runMetrics) observe(res *dijkstra.Result, roads int, took time.Duration) {
	m.cities.Set(float64(len(res.Distances)))
	m.roads.Set(float64(roads))
	m.reachable.Set(float64(res.Reachable()))
	m.coverage.Set(float64(res.Max))
	m.solveDuration.Observe(took.Seconds())
}

// finish counts the run and writes the textfile.
func (m *runMetrics) finish(path string, runErr error) error {
	outcome := "ok"
	if runErr != nil {
		outcome = "error"
	}
	m.runs.WithLabelValues(outcome).Inc()

	return prometheus.WriteToTextfile(path, m.reg)
}
