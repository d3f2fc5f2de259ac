package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"spendtrack-client/internal/config"
)

// NewMetricsRecorder returns a Prometheus-backed recorder when metrics are
// enabled in configuration, a no-op recorder otherwise. A nil registerer
// falls back to the process-wide default registry.
func NewMetricsRecorder(cfg *config.Config, reg prometheus.Registerer) MetricsRecorderInterface {
	if cfg == nil || !cfg.Metrics.Enabled {
		return NewNoopMetrics()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return NewPrometheusMetrics(reg)
}

type PrometheusMetrics struct {
	loadsTotal          *prometheus.CounterVec
	loadDuration        prometheus.Histogram
	staleLoadsDiscarded prometheus.Counter
	mutationsTotal      *prometheus.CounterVec
	validationRejected  *prometheus.CounterVec
	reportFetchesTotal  *prometheus.CounterVec
}

// NewPrometheusMetrics registers the client's collectors against the given
// registerer. Pass prometheus.DefaultRegisterer for the process-wide registry;
// construct at most once per registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		loadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendtrack_loads_total",
				Help: "Total number of combined list+summary loads",
			},
			[]string{"result"},
		),
		loadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "spendtrack_load_duration_milliseconds",
				Help:    "Combined list+summary load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		staleLoadsDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "spendtrack_stale_loads_discarded_total",
				Help: "Loads whose responses were discarded because a newer load was issued",
			},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendtrack_mutations_total",
				Help: "Total number of create/delete mutations",
			},
			[]string{"operation", "result"},
		),
		validationRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendtrack_validation_rejected_total",
				Help: "Mutations rejected locally before any network call",
			},
			[]string{"operation"},
		),
		reportFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendtrack_report_fetches_total",
				Help: "Total number of independent report fetches",
			},
			[]string{"report", "result"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	result := tags["result"]

	switch name {
	case "load.completed":
		m.loadsTotal.WithLabelValues(result).Inc()
	case "load.stale_discarded":
		m.staleLoadsDiscarded.Inc()
	case "mutation.completed":
		m.mutationsTotal.WithLabelValues(operation, result).Inc()
	case "validation.rejected":
		m.validationRejected.WithLabelValues(operation).Inc()
	case "report.fetched":
		m.reportFetchesTotal.WithLabelValues(tags["report"], result).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "load":
		m.loadDuration.Observe(float64(duration.Milliseconds()))
	}
}
