// Package metrics provides a Prometheus-backed decimate.Observer. It is
// entirely optional: decimate's core loop depends on nothing in this
// package, only on the Observer interface it defines. A caller that wants
// counters constructs an Observer here and passes it to decimate.NewDriver
// via decimate.WithObserver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/decimate/decimate"
)

const namespace = "decimate"

// Observer implements decimate.Observer on top of three Prometheus
// collectors: a counter of collapses by outcome status, a gauge of queue
// size (tombstones included), and a histogram of iteration measure.
type Observer struct {
	collapses *prometheus.CounterVec
	queueSize prometheus.Gauge
	measure   prometheus.Histogram
}

// New registers its collectors with reg and returns an Observer ready to
// pass to decimate.WithObserver. Passing prometheus.NewRegistry() keeps the
// metrics out of the global default registry, which matters for tests that
// construct more than one Observer in the same process.
func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		collapses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collapses_total",
			Help:      "Join-vertex attempts, partitioned by outcome status.",
		}, []string{"status"}),
		queueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_size",
			Help:      "Number of entries, tombstones included, currently in the priority queue.",
		}),
		measure: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iteration_measure",
			Help:      "Criterion measure of the edge extracted at each iteration.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(o.collapses, o.queueSize, o.measure)
	return o
}

// OnExtract records the measure of the edge just popped off the queue.
func (o *Observer) OnExtract(iter int, key decimate.EdgeKey, p decimate.Priority) {
	o.measure.Observe(p.Measure)
}

// OnOutcome increments the collapses counter for status.
func (o *Observer) OnOutcome(iter int, key decimate.EdgeKey, status decimate.Status) {
	o.collapses.WithLabelValues(status.String()).Inc()
}

// OnQueueSize sets the queue-size gauge.
func (o *Observer) OnQueueSize(n int) {
	o.queueSize.Set(float64(n))
}
