// Package metrics exports spanning run progress as Prometheus metrics.
//
// Collector implements spanning.Observer. Register it on a registry, pass it
// to spanning.New with spanning.WithObserver, and either serve the registry or
// write it once with WriteTextfile at the end of a batch run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/circuits/edges"
	"github.com/katalvlaran/circuits/spanning"
)

const namespace = "circuits"

// Collector counts edges, merges and skips per mode and times each walk.
type Collector struct {
	edges     prometheus.Gauge
	merges    *prometheus.CounterVec
	skips     *prometheus.CounterVec
	remaining *prometheus.GaugeVec
	runs      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ spanning.Observer = (*Collector)(nil)

// NewCollector builds the collector and registers it on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges_sorted",
			Help:      "Number of pairwise edges generated and sorted.",
		}),
		merges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Edges that joined two clusters.",
		}, []string{"mode"}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skips_total",
			Help:      "Edges whose endpoints already shared a cluster.",
		}, []string{"mode"}),
		remaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clusters_remaining",
			Help:      "Cluster count after the latest merge.",
		}, []string{"mode"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed walks by outcome.",
		}, []string{"mode", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a walk over the sorted edges.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
	}

	for _, col := range []prometheus.Collector{c.edges, c.merges, c.skips, c.remaining, c.runs, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

func (c *Collector) OnEdges(n int) { c.edges.Set(float64(n)) }

func (c *Collector) OnMerge(mode spanning.Mode, _ edges.Edge, remaining int) {
	c.merges.WithLabelValues(string(mode)).Inc()
	c.remaining.WithLabelValues(string(mode)).Set(float64(remaining))
}

func (c *Collector) OnSkip(mode spanning.Mode, _ edges.Edge) {
	c.skips.WithLabelValues(string(mode)).Inc()
}

func (c *Collector) OnDone(mode spanning.Mode, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.runs.WithLabelValues(string(mode), outcome).Inc()
	c.duration.WithLabelValues(string(mode)).Observe(elapsed.Seconds())
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
