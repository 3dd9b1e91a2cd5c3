package executor

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the optional Prometheus collectors a pool executor reports
// through when built with Builder.Metrics. A nil *Metrics is valid and
// every instrumentation call site in this package nil-checks first, so
// metrics are strictly opt-in.
type Metrics struct {
	Dispatched prometheus.Counter
	Completed  prometheus.Counter
	Rejected   prometheus.Counter
	QueueDepth prometheus.Gauge
}

// NewMetrics builds and registers a Metrics set on reg, labeling every
// collector with name so multiple executors can share one registry without
// collector name collisions.
func NewMetrics(reg prometheus.Registerer, name string) *Metrics {
	labels := prometheus.Labels{"executor": name}
	m := &Metrics{
		Dispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "weave",
			Subsystem:   "executor",
			Name:        "dispatched_total",
			Help:        "Total callables accepted by Dispatch.",
			ConstLabels: labels,
		}),
		Completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "weave",
			Subsystem:   "executor",
			Name:        "completed_total",
			Help:        "Total callables that finished running.",
			ConstLabels: labels,
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "weave",
			Subsystem:   "executor",
			Name:        "rejected_total",
			Help:        "Total Dispatch calls rejected (shutting down or queue full).",
			ConstLabels: labels,
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "weave",
			Subsystem:   "executor",
			Name:        "queue_depth",
			Help:        "Approximate number of queued-but-not-yet-run callables.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.Dispatched, m.Completed, m.Rejected, m.QueueDepth)
	return m
}
