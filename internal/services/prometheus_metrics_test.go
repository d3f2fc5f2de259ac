package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"spendtrack-client/internal/config"
)

type PrometheusMetricsTestSuite struct {
	suite.Suite
	registry *prometheus.Registry
	metrics  MetricsRecorderInterface
}

func TestPrometheusMetricsSuite(t *testing.T) {
	suite.Run(t, new(PrometheusMetricsTestSuite))
}

func (s *PrometheusMetricsTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.metrics = NewPrometheusMetrics(s.registry)
}

func (s *PrometheusMetricsTestSuite) gatheredValue(name string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func (s *PrometheusMetricsTestSuite) TestCounterNamesMapToCollectors() {
	s.metrics.IncrementCounter("load.completed", map[string]string{"result": "success"})
	s.metrics.IncrementCounter("load.completed", map[string]string{"result": "failed"})
	s.metrics.IncrementCounter("load.stale_discarded", nil)
	s.metrics.IncrementCounter("mutation.completed", map[string]string{"operation": "create", "result": "success"})
	s.metrics.IncrementCounter("validation.rejected", map[string]string{"operation": "create"})
	s.metrics.IncrementCounter("report.fetched", map[string]string{"report": "analytics", "result": "success"})

	s.Equal(2.0, s.gatheredValue("spendtrack_loads_total"))
	s.Equal(1.0, s.gatheredValue("spendtrack_stale_loads_discarded_total"))
	s.Equal(1.0, s.gatheredValue("spendtrack_mutations_total"))
	s.Equal(1.0, s.gatheredValue("spendtrack_validation_rejected_total"))
	s.Equal(1.0, s.gatheredValue("spendtrack_report_fetches_total"))
}

func (s *PrometheusMetricsTestSuite) TestNewMetricsRecorderHonorsConfig() {
	enabled := &config.Config{Metrics: config.MetricsConfig{Enabled: true}}
	recorder := NewMetricsRecorder(enabled, prometheus.NewRegistry())
	_, isPrometheus := recorder.(*PrometheusMetrics)
	s.True(isPrometheus)

	recorder = NewMetricsRecorder(&config.Config{}, nil)
	_, isNoop := recorder.(*NoopMetrics)
	s.True(isNoop)

	recorder = NewMetricsRecorder(nil, nil)
	_, isNoop = recorder.(*NoopMetrics)
	s.True(isNoop)
}

func (s *PrometheusMetricsTestSuite) TestUnknownCounterNameIsIgnored() {
	s.metrics.IncrementCounter("unknown.counter", nil)
	s.Equal(0.0, s.gatheredValue("spendtrack_loads_total"))
}

func (s *PrometheusMetricsTestSuite) TestLoadDurationObserved() {
	s.metrics.RecordProcessingTime("load", 250*time.Millisecond)
	s.metrics.RecordProcessingTime("unrelated", time.Second)

	families, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, family := range families {
		if family.GetName() == "spendtrack_load_duration_milliseconds" {
			s.Equal(uint64(1), family.GetMetric()[0].GetHistogram().GetSampleCount())
			s.Equal(250.0, family.GetMetric()[0].GetHistogram().GetSampleSum())
		}
	}
}
