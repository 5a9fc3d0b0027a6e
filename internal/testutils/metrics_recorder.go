package testutils

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ahrav/go-revsent/internal/ports"
)

var _ ports.MetricsCollector = (*MetricsRecorder)(nil)

// MetricsRecorder implements the MetricsCollector interface by keeping every
// recorded value in memory so tests can assert on what the application
// reported. Values are keyed by metric name plus sorted labels.
type MetricsRecorder struct {
	mu         sync.Mutex
	latencies  map[string][]time.Duration
	counters   map[string]float64
	gauges     map[string]float64
	histograms map[string][]float64
}

// NewMetricsRecorder creates an empty MetricsRecorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{
		latencies:  make(map[string][]time.Duration),
		counters:   make(map[string]float64),
		gauges:     make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

// SeriesKey builds the lookup key for a metric and its labels, for example
// "documents_scored_total{group=Spotify,mode=compare}".
func SeriesKey(metric string, labels map[string]string) string {
	if len(labels) == 0 {
		return metric
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(metric)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

func (m *MetricsRecorder) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := SeriesKey(operation, labels)
	m.latencies[key] = append(m.latencies[key], duration)
}

func (m *MetricsRecorder) RecordCounter(metric string, value float64, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[SeriesKey(metric, labels)] += value
}

func (m *MetricsRecorder) RecordGauge(metric string, value float64, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[SeriesKey(metric, labels)] = value
}

func (m *MetricsRecorder) RecordHistogram(metric string, value float64, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := SeriesKey(metric, labels)
	m.histograms[key] = append(m.histograms[key], value)
}

// Counter returns the accumulated value of a counter series.
func (m *MetricsRecorder) Counter(metric string, labels map[string]string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[SeriesKey(metric, labels)]
}

// Gauge returns the last value set on a gauge series and whether it was set.
func (m *MetricsRecorder) Gauge(metric string, labels map[string]string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.gauges[SeriesKey(metric, labels)]
	return v, ok
}

// Observations returns a copy of the values observed on a histogram series.
func (m *MetricsRecorder) Observations(metric string, labels map[string]string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.histograms[SeriesKey(metric, labels)]...)
}

// Latencies returns a copy of the durations recorded for an operation.
func (m *MetricsRecorder) Latencies(operation string, labels map[string]string) []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.latencies[SeriesKey(operation, labels)]...)
}
