// Package metrics wraps the handful of Prometheus counters/histograms
// the naming pipeline emits (rules executed, naming latency, conflicts
// recorded, fallback invocations). The core never starts an HTTP
// listener itself; metrics are exposed via a caller-supplied
// prometheus.Registerer, wired into whatever process embeds the
// library.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsPrefix = "iupac_namer_"

var latencyBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500}

// Metrics is the naming pipeline's telemetry surface. Every
// implementation (Prometheus-backed, noop) satisfies it so the engine
// never depends on Prometheus directly.
type Metrics interface {
	// RecordNaming records one completed Pipeline.Run: its wall-clock
	// duration, the number of rules that fired, the number of
	// conflicts recorded in the trace, and whether the engine-level
	// fallback name was produced.
	RecordNaming(duration time.Duration, rulesExecuted, conflicts int, fellBack bool)

	// RecordLayerSkipped records one layer skipped for an unmet
	// dependency.
	RecordLayerSkipped(phase string)
}

type prometheusMetrics struct {
	namingLatency   prometheus.Histogram
	namingTotal     *prometheus.CounterVec
	rulesExecuted   prometheus.Histogram
	conflictsTotal  prometheus.Counter
	fallbackTotal   prometheus.Counter
	layerSkipsTotal *prometheus.CounterVec
}

// New builds a Prometheus-backed Metrics and registers it with
// registerer. A nil registerer registers against
// prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) (Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &prometheusMetrics{
		namingLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricsPrefix + "naming_duration_seconds",
			Help:    "Histogram of Pipeline.Run wall-clock duration in seconds.",
			Buckets: latencyBuckets,
		}),
		namingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "naming_total",
			Help: "Total number of naming requests, by outcome.",
		}, []string{"outcome"}),
		rulesExecuted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricsPrefix + "rules_executed",
			Help:    "Histogram of the number of rules that fired per naming request.",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		}),
		conflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "conflicts_total",
			Help: "Total number of conflicts recorded in the rule trace.",
		}),
		fallbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "fallback_total",
			Help: "Total number of naming requests that produced the engine-level fallback name.",
		}),
		layerSkipsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "layer_skips_total",
			Help: "Total number of layers skipped for an unmet dependency, by layer.",
		}, []string{"phase"}),
	}

	collectors := []prometheus.Collector{
		m.namingLatency,
		m.namingTotal,
		m.rulesExecuted,
		m.conflictsTotal,
		m.fallbackTotal,
		m.layerSkipsTotal,
	}
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *prometheusMetrics) RecordNaming(duration time.Duration, rulesExecuted, conflicts int, fellBack bool) {
	m.namingLatency.Observe(duration.Seconds())
	m.rulesExecuted.Observe(float64(rulesExecuted))
	m.conflictsTotal.Add(float64(conflicts))

	outcome := "named"
	if fellBack {
		outcome = "fallback"
		m.fallbackTotal.Inc()
	}
	m.namingTotal.WithLabelValues(outcome).Inc()
}

func (m *prometheusMetrics) RecordLayerSkipped(phase string) {
	m.layerSkipsTotal.WithLabelValues(phase).Inc()
}

// noopMetrics discards every recorded event; it is the Metrics value
// a caller who doesn't care about telemetry gets, so the library
// never forces a Prometheus dependency on them.
type noopMetrics struct{}

// NewNoop answers a Metrics that discards every event.
func NewNoop() Metrics { return noopMetrics{} }

func (noopMetrics) RecordNaming(time.Duration, int, int, bool) {}
func (noopMetrics) RecordLayerSkipped(string)                  {}

var (
	_ Metrics = (*prometheusMetrics)(nil)
	_ Metrics = noopMetrics{}
)
