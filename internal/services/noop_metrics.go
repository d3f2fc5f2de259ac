package services

import "time"

// NoopMetrics discards every recording. It is the default recorder when
// metrics are disabled and keeps tests free of global registry state.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) IncrementCounter(name string, tags map[string]string) {}

func (m *NoopMetrics) RecordProcessingTime(name string, duration time.Duration) {}
